package files

import (
	"context"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

// DirContext is an immutable-ish snapshot of a directory: the store it
// was read from, its path and the children loaded so far. The tree and
// the preview panes share one instance per displayed directory.
type DirContext struct {
	store     Store
	path      string
	children  []os.DirEntry
	timestamp time.Time
}

func NewDirContext(store Store, dirPath string, children []os.DirEntry) *DirContext {
	return &DirContext{
		store:    store,
		path:     dirPath,
		children: children,
	}
}

func (c *DirContext) Store() Store { return c.store }
func (c *DirContext) Path() string { return c.path }

// Timestamp is the moment children were last set.
func (c *DirContext) Timestamp() time.Time { return c.timestamp }

func (c *DirContext) SetChildren(entries []os.DirEntry) {
	c.children = entries
	c.timestamp = time.Now()
}

// Children returns a copy so callers can not mutate the shared snapshot.
func (c *DirContext) Children() []os.DirEntry {
	if c.children == nil {
		return nil
	}
	children := make([]os.DirEntry, len(c.children))
	copy(children, c.children)
	return children
}

func (c *DirContext) Entries() []*EntryWithDirPath {
	entries := make([]*EntryWithDirPath, len(c.children))
	for i, child := range c.children {
		entries[i] = NewEntryWithDirPath(child, c.path)
	}
	return entries
}

func (c *DirContext) DirPath() string {
	if c.path == "" {
		return ""
	}
	return path.Dir(c.path)
}

func (c *DirContext) FullName() string { return c.path }
func (c *DirContext) String() string   { return c.path }

func (c *DirContext) Name() string {
	if c.path == "" {
		return ""
	}
	if c.path == "/" {
		return "/"
	}
	return path.Base(strings.TrimSuffix(c.path, "/"))
}

func (c *DirContext) IsDir() bool       { return true }
func (c *DirContext) Type() os.FileMode { return os.ModeDir }

func (c *DirContext) Info() (os.FileInfo, error) {
	if c.path == "" || c.store == nil {
		return nil, nil
	}
	return c.store.Stat(context.Background(), c.path)
}

// SortChildren orders entries directories-first, then by name. All
// backends return entries through this so the tree and the previews
// agree on ordering.
func SortChildren(children []os.DirEntry) []os.DirEntry {
	sorted := make([]os.DirEntry, len(children))
	copy(sorted, children)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].IsDir() != sorted[j].IsDir() {
			return sorted[i].IsDir()
		}
		return sorted[i].Name() < sorted[j].Name()
	})
	return sorted
}
