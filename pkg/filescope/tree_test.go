package filescope

import (
	"testing"

	"github.com/filescope/filescope/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_ZoomInZoomOutRoundTrip(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		b.tree.zoomIn(b.current.Entries()[0]) // docs
	})
	waitForDir(t, b, app, "/docs")
	app.sync(func() {
		assert.Equal(t, "/docs", b.tree.rootNode.GetText())
		require.Len(t, b.tree.rootNode.GetChildren(), 1)
	})

	app.sync(func() {
		b.tree.zoomOut()
	})
	waitForDir(t, b, app, "/")
	app.sync(func() {
		// Back at the parent with the zoomed dir selected.
		require.NotNil(t, b.currentEntry)
		assert.Equal(t, "docs", b.currentEntry.Name())
		assert.Len(t, b.tree.rootNode.GetChildren(), 3)
	})
}

func TestTree_ZoomOutAtRootIsNoop(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		b.tree.zoomOut()
		assert.Equal(t, "/", b.current.Path())
	})
}

func TestTree_RefreshPreservesSelection(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		node := b.tree.rootNode.GetChildren()[2] // b.csv
		b.tree.SetCurrentNode(node)
		b.tree.changed(node)
	})

	app.sync(func() {
		b.tree.refresh()
	})

	assert.Eventually(t, func() bool {
		var name string
		app.sync(func() {
			if b.currentEntry != nil {
				name = b.currentEntry.Name()
			}
		})
		return name == "b.csv"
	}, waitFor, tick)

	app.sync(func() {
		names := make([]string, 0, 3)
		for _, node := range b.tree.rootNode.GetChildren() {
			names = append(names, node.GetReference().(*files.EntryWithDirPath).Name())
		}
		assert.Equal(t, []string{"docs", "a.txt", "b.csv"}, names)
	})
}

func TestTree_RefreshAfterDeleteFallsBackToRoot(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		node := b.tree.rootNode.GetChildren()[1] // a.txt
		b.tree.SetCurrentNode(node)
		b.tree.changed(node)
		store.setDir("/",
			files.NewDirEntry("docs", true),
			files.NewDirEntry("b.csv", false),
		)
	})

	app.sync(func() {
		b.tree.refresh()
	})

	assert.Eventually(t, func() bool {
		var n int
		app.sync(func() {
			n = len(b.tree.rootNode.GetChildren())
		})
		return n == 2
	}, waitFor, tick)

	app.sync(func() {
		assert.Nil(t, b.currentEntry)
		assert.Equal(t, b.tree.rootNode, b.tree.GetCurrentNode())
	})
}

func TestEntryLabel(t *testing.T) {
	dir := files.NewEntryWithDirPath(files.NewDirEntry("docs", true), "/")
	file := files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false), "/")
	assert.Equal(t, dirEmoji+"docs", entryLabel(dir))
	assert.Equal(t, "a.txt", entryLabel(file))
}
