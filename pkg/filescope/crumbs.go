package filescope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"
)

type crumb struct {
	title string
	path  string
}

// breadcrumbs is the clickable address row: one region per path
// segment, clicking a segment zooms the tree to it.
type breadcrumbs struct {
	*tview.TextView
	b     *Browser
	items []crumb
}

func newBreadcrumbs(b *Browser) *breadcrumbs {
	tv := tview.NewTextView()
	c := &breadcrumbs{
		TextView: tv,
		b:        b,
	}
	tv.SetDynamicColors(true)
	tv.SetRegions(true)
	tv.SetWrap(false)
	tv.SetHighlightedFunc(c.highlighted)
	return c
}

func (c *breadcrumbs) set(items []crumb) {
	c.items = items
	c.Highlight()

	const separator = " › "
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString(separator)
		}
		title := tview.Escape(item.title)
		fmt.Fprintf(&sb, `["%d"][#%06x]%s[-][""]`, i, Style.CrumbColor.Hex(), title)
	}
	c.SetText(sb.String())
}

func (c *breadcrumbs) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	i, err := strconv.Atoi(added[0])
	if err != nil || i < 0 || i >= len(c.items) {
		return
	}
	c.b.tree.openRoot(c.items[i].path)
	c.Highlight()
}
