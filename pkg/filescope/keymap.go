package filescope

import (
	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionFocusTree
	actionFocusFilePreview
	actionFocusDataPreview
	actionFocusLog
	actionRefresh
	actionCommandMode
	actionSearchMode
	actionDriveSelect
)

// binding maps a key or rune to an action. Key bindings win over rune
// bindings when both could match.
type binding struct {
	key    tcell.Key
	r      rune
	action action
	help   string
}

func defaultBindings() []binding {
	return []binding{
		{r: 'q', action: actionQuit, help: "quit"},
		{key: tcell.KeyCtrlC, action: actionQuit, help: "quit"},
		{r: 'b', action: actionFocusTree, help: "browse"},
		{r: 'f', action: actionFocusFilePreview, help: "file"},
		{r: 'd', action: actionFocusDataPreview, help: "data"},
		{r: 'w', action: actionFocusLog, help: "log"},
		{r: 'r', action: actionRefresh, help: "refresh"},
		{r: ':', action: actionCommandMode, help: "command"},
		{r: '/', action: actionSearchMode, help: "search"},
		{r: 'o', action: actionDriveSelect, help: "drive"},
	}
}

func (b *Browser) actionFor(event *tcell.EventKey) action {
	for _, kb := range b.bindings {
		if kb.key != 0 && kb.key == event.Key() {
			return kb.action
		}
		if kb.r != 0 && event.Key() == tcell.KeyRune && kb.r == event.Rune() {
			return kb.action
		}
	}
	return actionNone
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if b.inTextEntry() {
		return event
	}
	if b.perform(b.actionFor(event)) {
		return nil
	}
	return event
}

// perform runs the action and reports whether the event was consumed.
func (b *Browser) perform(a action) bool {
	switch a {
	case actionQuit:
		b.app.Stop()
	case actionFocusTree:
		b.app.SetFocus(b.tree)
	case actionFocusFilePreview:
		b.app.SetFocus(b.preview)
	case actionFocusDataPreview:
		b.app.SetFocus(b.data)
	case actionFocusLog:
		b.app.SetFocus(b.logPane)
	case actionRefresh:
		b.tree.refresh()
	case actionCommandMode:
		b.app.SetFocus(b.cmdBar)
	case actionSearchMode:
		b.app.SetFocus(b.search)
	case actionDriveSelect:
		b.app.SetFocus(b.driveSel)
	default:
		return false
	}
	return true
}
