package httpfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/filescope/filescope/pkg/files"
)

type StoreOption func(*Store)

func WithHTTPClient(client *http.Client) StoreOption {
	return func(store *Store) {
		store.client = client
	}
}

var _ files.Store = (*Store)(nil)

// Store browses HTML directory index pages the way nginx/Apache
// autoindex emits them. Best effort: anchors ending in "/" are treated
// as directories, everything else as files.
type Store struct {
	root   url.URL
	client *http.Client
}

func NewStore(root url.URL, o ...StoreOption) *Store {
	store := &Store{
		root: root,
	}
	for _, opt := range o {
		opt(store)
	}
	return store
}

func (s Store) RootURL() url.URL {
	return s.root
}

func (s Store) RootTitle() string {
	root := s.root
	root.User = nil
	return root.String()
}

func (s Store) httpClient() *http.Client {
	if s.client != nil {
		return s.client
	}
	return http.DefaultClient
}

var hrefRe = regexp.MustCompile(`<a href="([^"]+)">`)

func (s Store) ReadDir(ctx context.Context, dirPath string) ([]os.DirEntry, error) {
	u := s.root
	u.Path = dirPath
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	body, err := s.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directory listing: %w", err)
	}

	matches := hrefRe.FindAllStringSubmatch(string(body), -1)
	var entries []os.DirEntry
	for _, match := range matches {
		href := match[1]
		if href == "../" || href == "/" || strings.HasPrefix(href, "?") {
			continue
		}
		isDir := strings.HasSuffix(href, "/")
		name := strings.TrimSuffix(href, "/")
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if name == "" {
			continue
		}
		entries = append(entries, files.NewDirEntry(name, isDir))
	}
	return entries, nil
}

func (s Store) ReadFile(ctx context.Context, filePath string, limit int) ([]byte, error) {
	u := s.root
	u.Path = filePath
	body, err := s.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file: %w", err)
	}
	if limit > 0 && len(body) > limit {
		body = body[:limit]
	}
	return body, nil
}

// Stat is not supported: an index page carries no reliable metadata.
func (s Store) Stat(ctx context.Context, filePath string) (os.FileInfo, error) {
	_, _ = ctx, filePath
	return nil, files.ErrNotSupported
}

func (s Store) get(ctx context.Context, u url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
