package files

import (
	"context"
	"errors"
	"net/url"
	"os"
)

// ErrNotSupported is returned by backends for operations their protocol
// cannot express, e.g. Stat over a bare HTTP index.
var ErrNotSupported = errors.New("operation not supported by this drive backend")

// Store is the capability interface every drive backend implements.
// ReadFile with limit > 0 returns at most limit bytes from the head of
// the file; limit <= 0 returns the whole file.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, path string) ([]os.DirEntry, error)
	ReadFile(ctx context.Context, path string, limit int) ([]byte, error)
	Stat(ctx context.Context, path string) (os.FileInfo, error)
}
