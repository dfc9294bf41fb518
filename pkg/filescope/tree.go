package filescope

import (
	"context"
	"path"
	"sync/atomic"
	"time"

	"github.com/filescope/filescope/pkg/files"
	"github.com/filescope/filescope/pkg/state"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const dirEmoji = "📁"

const readDirTimeout = 30 * time.Second

// treePane lists the entries of the current root. Enter on a folder
// zooms into it, Escape zooms out to the parent.
type treePane struct {
	*tview.TreeView
	b        *Browser
	rootNode *tview.TreeNode

	// loadSeq invalidates results of superseded loads.
	loadSeq int64
}

func newTreePane(b *Browser) *treePane {
	tv := tview.NewTreeView()
	t := &treePane{
		TreeView: tv,
		b:        b,
		rootNode: tview.NewTreeNode("/"),
	}
	decoratePane(tv.Box, " Files ")
	tv.SetRoot(t.rootNode)
	tv.SetCurrentNode(t.rootNode)
	tv.SetGraphicsColor(tcell.ColorWhite)
	tv.SetChangedFunc(t.changed)
	tv.SetSelectedFunc(t.selected)
	tv.SetInputCapture(t.treeInputCapture)
	return t
}

func (t *treePane) changed(node *tview.TreeNode) {
	b := t.b
	entry, ok := node.GetReference().(*files.EntryWithDirPath)
	if !ok {
		b.currentEntry = nil
		b.preview.showEntry(nil)
		b.data.showEntry(nil)
		return
	}
	b.currentEntry = entry
	state.SaveCurrentEntry(entry.Name())
	b.preview.showEntry(entry)
	b.data.showEntry(entry)
}

func (t *treePane) selected(node *tview.TreeNode) {
	if entry, ok := node.GetReference().(*files.EntryWithDirPath); ok && entry.IsDir() {
		t.zoomIn(entry)
	}
}

func (t *treePane) treeInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyLeft:
		t.zoomOut()
		return nil
	case tcell.KeyRight:
		if entry, ok := t.GetCurrentNode().GetReference().(*files.EntryWithDirPath); ok && entry.IsDir() {
			t.zoomIn(entry)
			return nil
		}
		return event
	default:
		return event
	}
}

// openRoot loads dirPath as the new tree root with no selection.
func (t *treePane) openRoot(dirPath string) {
	t.loadDir(dirPath, "")
}

func (t *treePane) refresh() {
	if t.b.current == nil {
		return
	}
	t.loadDir(t.b.current.Path(), t.selectedName())
}

func (t *treePane) zoomIn(entry *files.EntryWithDirPath) {
	t.loadDir(entry.FullName(), "")
}

func (t *treePane) zoomOut() {
	if t.b.current == nil {
		return
	}
	current := t.b.current.Path()
	if current == "/" || current == "" {
		return
	}
	parent := path.Dir(path.Clean(current))
	t.loadDir(parent, path.Base(current))
}

func (t *treePane) selectedName() string {
	node := t.GetCurrentNode()
	if node == nil {
		return ""
	}
	if entry, ok := node.GetReference().(*files.EntryWithDirPath); ok {
		return entry.Name()
	}
	return ""
}

// loadDir reads dirPath in a goroutine and applies the result on the
// UI thread. On error the pane keeps whatever it was showing and the
// failure goes to the log pane.
func (t *treePane) loadDir(dirPath, selectName string) {
	b := t.b
	store := b.store
	if store == nil {
		return
	}
	seq := atomic.AddInt64(&t.loadSeq, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), readDirTimeout)
		defer cancel()
		children, err := store.ReadDir(ctx, dirPath)
		b.app.QueueUpdateDraw(func() {
			if atomic.LoadInt64(&t.loadSeq) != seq {
				return
			}
			if err != nil {
				b.logger.Error("cannot read directory",
					zap.String("dir", dirPath), zap.Error(err))
				return
			}
			dirContext := files.NewDirContext(store, dirPath, files.SortChildren(children))
			t.apply(dirContext, selectName)
		})
	}()
}

func (t *treePane) apply(dirContext *files.DirContext, selectName string) {
	b := t.b
	b.current = dirContext

	t.rootNode.SetText(dirContext.Path())
	t.rootNode.SetReference(dirContext.Path())
	t.rootNode.ClearChildren()

	var selectNode *tview.TreeNode
	for _, entry := range dirContext.Entries() {
		node := tview.NewTreeNode(entryLabel(entry)).SetReference(entry)
		if entry.IsDir() {
			node.SetColor(Style.DirColor)
		} else {
			node.SetColor(colorByFileName(entry.Name()))
		}
		t.rootNode.AddChild(node)
		if selectName != "" && entry.Name() == selectName {
			selectNode = node
		}
	}
	if selectNode == nil {
		selectNode = t.rootNode
	}
	t.SetCurrentNode(selectNode)
	// SetCurrentNode does not fire the changed handler.
	t.changed(selectNode)

	b.setBreadcrumbs()
	b.search.onTreeReload()
	state.SaveCurrentDir(b.drive.Name, dirContext.Path())
}

func entryLabel(entry *files.EntryWithDirPath) string {
	if entry.IsDir() {
		return dirEmoji + entry.Name()
	}
	return entry.Name()
}
