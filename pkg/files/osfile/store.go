package osfile

import (
	"context"
	"io"
	"net/url"
	"os"

	"github.com/filescope/filescope/pkg/files"
)

// Seams for tests.
var (
	osReadDir   = os.ReadDir
	osHostname  = os.Hostname
	osOpen      = os.Open
	osStat      = os.Stat
	ioReadAll   = io.ReadAll
	readLimited = func(f *os.File, limit int) ([]byte, error) {
		data := make([]byte, limit)
		n, err := io.ReadFull(f, data)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			err = nil
		}
		return data[:n], err
	}
)

var _ files.Store = (*Store)(nil)

// Store serves the local filesystem.
type Store struct {
	title string
	root  string
}

func NewStore(root string) *Store {
	if root == "" {
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	store.title = "🖥️" + store.title
	return &store
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   s.root,
	}
}

func (s Store) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(path)
}

func (s Store) ReadFile(ctx context.Context, path string, limit int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := osOpen(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	if limit <= 0 {
		return ioReadAll(f)
	}
	return readLimited(f, limit)
}

func (s Store) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(path)
}
