package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry creates a synthetic os.DirEntry for backends whose
// protocol does not hand us one, e.g. HTML index pages or WebDAV
// responses. The name must be bare: entries carry their directory
// separately via EntryWithDirPath.
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		panic("dir entry name can not contain a path: " + name)
	}
	entry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if len(o) > 0 {
		entry.info = NewFileInfo(entry, o...)
	}
	return entry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }

func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}
