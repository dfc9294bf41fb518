package files

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDirEntry(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		de := NewDirEntry("notes.txt", false)
		assert.Equal(t, "notes.txt", de.Name())
		assert.False(t, de.IsDir())
		assert.Equal(t, os.FileMode(0), de.Type())
		info, err := de.Info()
		assert.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("directory", func(t *testing.T) {
		de := NewDirEntry("docs", true)
		assert.Equal(t, "docs", de.Name())
		assert.True(t, de.IsDir())
		assert.Equal(t, os.ModeDir, de.Type())
	})

	t.Run("with_info", func(t *testing.T) {
		modTime := time.Now()
		de := NewDirEntry("notes.txt", false, Size(123), ModTime(modTime))
		info, err := de.Info()
		assert.NoError(t, err)
		if assert.NotNil(t, info) {
			assert.Equal(t, "notes.txt", info.Name())
			assert.Equal(t, int64(123), info.Size())
			assert.True(t, info.ModTime().Equal(modTime))
			assert.False(t, info.IsDir())
			assert.Nil(t, info.Sys())
		}
	})

	t.Run("name_with_path_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewDirEntry("parent/child", false)
		})
	})
}

func TestFileInfo_NilReceiver(t *testing.T) {
	t.Parallel()
	var f *FileInfo
	assert.Equal(t, "", f.Name())
	assert.Equal(t, int64(0), f.Size())
	assert.Equal(t, os.FileMode(0), f.Mode())
	assert.True(t, f.ModTime().IsZero())
	assert.False(t, f.IsDir())
	assert.Nil(t, f.Sys())
}

func TestEntryWithDirPath(t *testing.T) {
	t.Parallel()

	entry := NewEntryWithDirPath(NewDirEntry("test.txt", false), "/home/user")
	assert.Equal(t, "/home/user", entry.DirPath())
	assert.Equal(t, "test.txt", entry.Name())
	assert.Equal(t, "/home/user/test.txt", entry.FullName())
	assert.Equal(t, "/home/user/test.txt", entry.String())

	t.Run("name_with_path_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewEntryWithDirPath(pathDirEntry{name: "parent/child"}, "/tmp")
		})
	})
}

type pathDirEntry struct {
	name string
}

func (p pathDirEntry) Name() string               { return p.name }
func (p pathDirEntry) IsDir() bool                { return false }
func (p pathDirEntry) Type() os.FileMode          { return 0 }
func (p pathDirEntry) Info() (os.FileInfo, error) { return nil, nil }

func TestSortChildren(t *testing.T) {
	t.Parallel()
	children := []os.DirEntry{
		NewDirEntry("zebra.txt", false),
		NewDirEntry("alpha", true),
		NewDirEntry("beta.txt", false),
		NewDirEntry("zoo", true),
	}
	sorted := SortChildren(children)

	names := make([]string, len(sorted))
	for i, c := range sorted {
		names[i] = c.Name()
	}
	assert.Equal(t, []string{"alpha", "zoo", "beta.txt", "zebra.txt"}, names)

	// input stays untouched
	assert.Equal(t, "zebra.txt", children[0].Name())
}
