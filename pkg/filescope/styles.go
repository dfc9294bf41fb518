package filescope

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurredBorderColor tcell.Color

	TableHeaderColor tcell.Color
	DirColor         tcell.Color
	ErrorColor       tcell.Color
	PlaceholderColor tcell.Color
	CrumbColor       tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurredBorderColor: tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,
	DirColor:         tcell.ColorLightSkyBlue,
	ErrorColor:       tcell.ColorOrangeRed,
	PlaceholderColor: tcell.ColorGray,
	CrumbColor:       tcell.ColorLightGreen,
}

// decoratePane gives a pane the shared bordered look and swaps the
// border color with focus.
func decoratePane(box *tview.Box, title string) {
	box.SetBorder(true)
	box.SetTitle(title)
	box.SetBorderColor(Style.BlurredBorderColor)
	box.SetFocusFunc(func() {
		box.SetBorderColor(Style.FocusedBorderColor)
	})
	box.SetBlurFunc(func() {
		box.SetBorderColor(Style.BlurredBorderColor)
	})
}
