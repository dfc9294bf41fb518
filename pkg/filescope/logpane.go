package filescope

import (
	"github.com/rivo/tview"
)

const logPaneMaxLines = 500

// logPane is the zap sink visible inside the application. TextView
// accepts concurrent writes, so the logger can use it directly.
type logPane struct {
	*tview.TextView
}

func newLogPane(app App) *logPane {
	tv := tview.NewTextView()
	p := &logPane{TextView: tv}
	decoratePane(tv.Box, " Log ")
	tv.SetDynamicColors(false)
	tv.SetScrollable(true)
	tv.SetMaxLines(logPaneMaxLines)
	tv.ScrollToEnd()
	tv.SetChangedFunc(func() {
		app.Draw()
	})
	return p
}
