package filescope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreadcrumbs_ClickZoomsTree(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		b.tree.zoomIn(b.current.Entries()[0]) // docs
	})
	waitForDir(t, b, app, "/docs")

	// Click the root crumb.
	app.sync(func() {
		b.crumbs.highlighted([]string{"0"}, nil, nil)
	})
	waitForDir(t, b, app, "/")
}

func TestBreadcrumbs_IgnoresBadRegions(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		b.crumbs.highlighted(nil, nil, nil)
		b.crumbs.highlighted([]string{"not-a-number"}, nil, nil)
		b.crumbs.highlighted([]string{"99"}, nil, nil)
		assert.Equal(t, "/", b.current.Path())
	})
}

func TestBottomBar_ClickPerformsAction(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		b.bottom.highlighted([]string{"w"}, nil, nil)
		assert.Equal(t, b.logPane, app.focused.(*logPane))

		text := b.bottom.GetText(false)
		assert.Contains(t, text, "quit")
		assert.Contains(t, text, "refresh")
	})
}
