package filescope

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// bottomBar renders the key bindings as a clickable menu line.
type bottomBar struct {
	*tview.TextView
	b *Browser
}

func newBottomBar(b *Browser) *bottomBar {
	bar := &bottomBar{
		b: b,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	bar.SetHighlightedFunc(bar.highlighted)
	bar.render()
	return bar
}

func (bar *bottomBar) render() {
	const separator = "┊"
	var sb strings.Builder
	first := true
	for _, kb := range bar.b.bindings {
		if kb.r == 0 || kb.help == "" {
			continue
		}
		if !first {
			sb.WriteString(separator)
		}
		first = false
		fmt.Fprintf(&sb, `["%c"][yellow]%c[-] %s[""]`, kb.r, kb.r, kb.help)
	}
	bar.SetText(sb.String())
}

func (bar *bottomBar) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	bar.Highlight()
	for _, kb := range bar.b.bindings {
		if kb.r != 0 && string(kb.r) == region {
			bar.b.perform(kb.action)
			return
		}
	}
}
