package filescope

import (
	"strings"

	"github.com/filescope/filescope/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sahilm/fuzzy"
)

// searchBar fuzzy-filters the visible tree entries. Up/Down cycle
// through the matches while the bar stays focused, Escape clears it.
type searchBar struct {
	*tview.InputField
	b *Browser

	matches  []*tview.TreeNode
	matchIdx int
}

func newSearchBar(b *Browser) *searchBar {
	s := &searchBar{
		InputField: tview.NewInputField(),
		b:          b,
	}
	s.SetLabel("/ ")
	s.SetLabelColor(Style.PlaceholderColor)
	s.SetPlaceholder("search")
	s.SetPlaceholderTextColor(Style.PlaceholderColor)
	s.SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	s.SetFieldTextColor(tview.Styles.PrimaryTextColor)
	s.SetChangedFunc(s.changed)
	s.SetInputCapture(s.searchInputCapture)
	return s
}

func (s *searchBar) searchInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		s.clear()
		s.b.app.SetFocus(s.b.tree)
		return nil
	case tcell.KeyDown, tcell.KeyEnter, tcell.KeyTab:
		s.cycle(1)
		return nil
	case tcell.KeyUp, tcell.KeyBacktab:
		s.cycle(-1)
		return nil
	default:
		return event
	}
}

func (s *searchBar) clear() {
	s.SetText("")
	s.changed("")
}

// onTreeReload re-applies the current pattern to the freshly built
// nodes, so a refresh does not leave stale highlights behind.
func (s *searchBar) onTreeReload() {
	if pattern := s.GetText(); pattern != "" {
		s.changed(pattern)
	} else {
		s.matches = nil
		s.matchIdx = 0
	}
}

func (s *searchBar) changed(pattern string) {
	tree := s.b.tree
	children := tree.rootNode.GetChildren()

	s.matches = nil
	s.matchIdx = 0

	if pattern == "" {
		for _, node := range children {
			if entry, ok := node.GetReference().(*files.EntryWithDirPath); ok {
				node.SetText(entryLabel(entry))
			}
		}
		return
	}

	names := make([]string, len(children))
	for i, node := range children {
		if entry, ok := node.GetReference().(*files.EntryWithDirPath); ok {
			names[i] = entry.Name()
		}
	}

	matched := make(map[int][]int, len(children))
	for _, m := range fuzzy.Find(pattern, names) {
		matched[m.Index] = m.MatchedIndexes
		s.matches = append(s.matches, children[m.Index])
	}

	for i, node := range children {
		entry, ok := node.GetReference().(*files.EntryWithDirPath)
		if !ok {
			continue
		}
		if indexes, ok := matched[i]; ok {
			prefix := ""
			if entry.IsDir() {
				prefix = dirEmoji
			}
			node.SetText(prefix + highlightMatched(entry.Name(), indexes))
		} else {
			node.SetText(entryLabel(entry))
		}
	}

	if len(s.matches) > 0 {
		tree.SetCurrentNode(s.matches[0])
		tree.changed(s.matches[0])
	}
}

func (s *searchBar) cycle(step int) {
	if len(s.matches) == 0 {
		return
	}
	s.matchIdx = (s.matchIdx + step + len(s.matches)) % len(s.matches)
	node := s.matches[s.matchIdx]
	s.b.tree.SetCurrentNode(node)
	s.b.tree.changed(node)
}

// highlightMatched wraps the matched bytes of name in a color tag.
// Indexes come from the fuzzy matcher and address bytes of name.
func highlightMatched(name string, indexes []int) string {
	set := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		set[i] = true
	}
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := tview.Escape(string(name[i]))
		if set[i] {
			sb.WriteString("[black:yellow]")
			sb.WriteString(c)
			sb.WriteString("[-:-]")
		} else {
			sb.WriteString(c)
		}
	}
	return sb.String()
}
