package files

import (
	"os"
	"path"
	"path/filepath"
)

// EntryWithDirPath pairs an os.DirEntry with the directory it was
// listed from, so panes can derive the full path without keeping a
// back-reference to the tree.
type EntryWithDirPath struct {
	os.DirEntry
	dir string
}

func NewEntryWithDirPath(entry os.DirEntry, dir string) *EntryWithDirPath {
	if parent, _ := filepath.Split(entry.Name()); parent != "" {
		panic("dir entry name can not contain a path: " + entry.Name())
	}
	return &EntryWithDirPath{
		DirEntry: entry,
		dir:      dir,
	}
}

func (e EntryWithDirPath) DirPath() string {
	return e.dir
}

func (e EntryWithDirPath) FullName() string {
	return path.Join(e.dir, e.Name())
}

func (e EntryWithDirPath) String() string {
	return e.FullName()
}
