package filescope

import (
	"github.com/rivo/tview"
)

// App is the subset of tview.Application the browser needs. Tests
// substitute a synchronous implementation.
type App interface {
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	Draw()
	Stop()
}

type tviewApp struct {
	*tview.Application
}

func (a tviewApp) QueueUpdateDraw(f func()) {
	_ = a.Application.QueueUpdateDraw(f)
}

func (a tviewApp) SetFocus(p tview.Primitive) {
	_ = a.Application.SetFocus(p)
}

func (a tviewApp) Draw() {
	_ = a.Application.Draw()
}
