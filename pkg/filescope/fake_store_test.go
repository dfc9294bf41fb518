package filescope

import (
	"context"
	"net/url"
	"os"
	"sync"

	"github.com/filescope/filescope/pkg/config"
	"github.com/filescope/filescope/pkg/files"
)

// fakeStore serves a fixed directory layout from memory.
type fakeStore struct {
	mu      sync.Mutex
	root    url.URL
	dirs    map[string][]os.DirEntry
	content map[string][]byte
	readErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		root:    url.URL{Scheme: "fake", Path: "/"},
		dirs:    map[string][]os.DirEntry{},
		content: map[string][]byte{},
	}
}

func (s *fakeStore) setDir(path string, entries ...os.DirEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirs[path] = entries
}

func (s *fakeStore) setReadErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

func (s *fakeStore) RootTitle() string {
	return "fake"
}

func (s *fakeStore) RootURL() url.URL {
	return s.root
}

func (s *fakeStore) ReadDir(_ context.Context, path string) ([]os.DirEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	entries, ok := s.dirs[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entries, nil
}

func (s *fakeStore) ReadFile(_ context.Context, path string, limit int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	data, ok := s.content[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	if limit > 0 && len(data) > limit {
		data = data[:limit]
	}
	return data, nil
}

func (s *fakeStore) Stat(_ context.Context, _ string) (os.FileInfo, error) {
	return nil, files.ErrNotSupported
}

var _ files.Store = (*fakeStore)(nil)

func testConfig() *config.Config {
	return &config.Config{
		Drives: []config.Drive{
			{Name: "fake", URL: "fake:///"},
			{Name: "other", URL: "fake://other/"},
		},
		Commands: []config.Command{
			{Name: "du", Template: `du -s -h "{path}"`},
			{Name: "echo", Template: "echo hi"},
		},
	}
}

// newTestBrowser builds a browser over the fake store with the fake
// drive open and its root loaded.
func newTestBrowser(store *fakeStore) (*Browser, *testApp) {
	app := &testApp{}
	b := NewBrowser(app, testConfig(),
		WithInitialDrive("fake"),
		WithStoreFactory(func(config.Drive) (files.Store, error) {
			return store, nil
		}),
	)
	return b, app
}
