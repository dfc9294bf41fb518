package ftpfile

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/filescope/filescope/pkg/files"
	"github.com/jlaffaye/ftp"
)

const scheme = "ftp"

var _ files.Store = (*Store)(nil)

// Store serves an FTP server. Each operation dials a fresh connection:
// the browser issues operations rarely enough that keeping a session
// alive is not worth the reconnect handling.
type Store struct {
	host     string
	path     string
	user     string
	password string
	explicit bool
	implicit bool
}

func NewStore(root url.URL) *Store {
	store := &Store{
		host: root.Host,
		path: root.Path,
	}
	if root.User != nil {
		store.user = root.User.Username()
		store.password, _ = root.User.Password()
	}
	return store
}

// SetTLS selects explicit (AUTH TLS) or implicit TLS for subsequent
// connections.
func (s *Store) SetTLS(explicit, implicit bool) {
	s.explicit = explicit
	s.implicit = implicit
}

func (s *Store) RootURL() url.URL {
	return url.URL{
		Scheme: scheme,
		Host:   s.host,
		Path:   s.path,
	}
}

func (s *Store) RootTitle() string {
	return scheme + "://" + s.host
}

func (s *Store) connect(ctx context.Context) (*ftp.ServerConn, error) {
	host, port, err := net.SplitHostPort(s.host)
	if err != nil {
		host = s.host
		port = "21"
	}
	addr := net.JoinHostPort(host, port)
	options := []ftp.DialOption{
		ftp.DialWithTimeout(5 * time.Second),
		ftp.DialWithContext(ctx),
	}
	if s.implicit {
		options = append(options, ftp.DialWithTLS(&tls.Config{ServerName: host, InsecureSkipVerify: true}))
	}
	if s.explicit {
		options = append(options, ftp.DialWithExplicitTLS(&tls.Config{ServerName: host, InsecureSkipVerify: true}))
	}

	c, err := ftp.Dial(addr, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ftp server: %w", err)
	}

	if s.user != "" {
		if err = c.Login(s.user, s.password); err != nil {
			_ = c.Quit()
			return nil, fmt.Errorf("failed to login to ftp server: %w", err)
		}
	}
	return c, nil
}

func (s *Store) ReadDir(ctx context.Context, dirPath string) ([]os.DirEntry, error) {
	c, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = c.Quit()
	}()

	entries, err := c.List(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	result := make([]os.DirEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}
		result = append(result, &ftpDirEntry{entry: entry})
	}
	return result, nil
}

func (s *Store) ReadFile(ctx context.Context, filePath string, limit int) ([]byte, error) {
	c, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = c.Quit()
	}()

	resp, err := c.Retr(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve file: %w", err)
	}
	defer func() {
		_ = resp.Close()
	}()

	var r io.Reader = resp
	if limit > 0 {
		r = io.LimitReader(resp, int64(limit))
	}
	return io.ReadAll(r)
}

func (s *Store) Stat(ctx context.Context, filePath string) (os.FileInfo, error) {
	dir, name := path.Split(filePath)
	entries, err := s.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Name() == name {
			return entry.Info()
		}
	}
	return nil, os.ErrNotExist
}

type ftpDirEntry struct {
	entry *ftp.Entry
}

func (e *ftpDirEntry) Name() string {
	return e.entry.Name
}

func (e *ftpDirEntry) IsDir() bool {
	return e.entry.Type == ftp.EntryTypeFolder
}

func (e *ftpDirEntry) Type() os.FileMode {
	if e.IsDir() {
		return os.ModeDir
	}
	return 0
}

func (e *ftpDirEntry) Info() (os.FileInfo, error) {
	return &ftpFileInfo{entry: e.entry}, nil
}

type ftpFileInfo struct {
	entry *ftp.Entry
}

func (f *ftpFileInfo) Name() string       { return f.entry.Name }
func (f *ftpFileInfo) Size() int64        { return int64(f.entry.Size) }
func (f *ftpFileInfo) Mode() os.FileMode  { return (&ftpDirEntry{entry: f.entry}).Type() }
func (f *ftpFileInfo) ModTime() time.Time { return f.entry.Time }
func (f *ftpFileInfo) IsDir() bool        { return f.entry.Type == ftp.EntryTypeFolder }
func (f *ftpFileInfo) Sys() any           { return f.entry }
