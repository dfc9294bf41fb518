package davfile

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/filescope/filescope/pkg/files"
	"github.com/go-resty/resty/v2"
)

const propfindBody = `<?xml version="1.0"?>
<d:propfind xmlns:d="DAV:">
  <d:prop>
    <d:displayname/>
    <d:getlastmodified/>
    <d:getcontentlength/>
    <d:resourcetype/>
  </d:prop>
</d:propfind>`

// rfc1123Time handles the getlastmodified format WebDAV servers emit.
type rfc1123Time struct {
	time.Time
}

func (t *rfc1123Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v string
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	if v == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC1123, v)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

type davResponse struct {
	XMLName xml.Name `xml:"response"`
	Href    string   `xml:"href"`
	Props   struct {
		DisplayName      string      `xml:"displayname"`
		GetLastModified  rfc1123Time `xml:"getlastmodified"`
		GetContentLength int64       `xml:"getcontentlength"`
		ResourceType     struct {
			Collection *struct{} `xml:"collection"`
		} `xml:"resourcetype"`
	} `xml:"propstat>prop"`
}

type multiStatus struct {
	XMLName   xml.Name      `xml:"multistatus"`
	Responses []davResponse `xml:"response"`
}

var _ files.Store = (*Store)(nil)

// Store serves a WebDAV share. The root URL points at the DAV
// collection root, e.g. https://cloud.example.com/remote.php/dav/files/bob.
type Store struct {
	root   url.URL
	client *resty.Client
}

type StoreOption func(*Store)

func WithClient(client *resty.Client) StoreOption {
	return func(store *Store) {
		store.client = client
	}
}

func NewStore(root url.URL, o ...StoreOption) *Store {
	store := &Store{root: root}
	for _, opt := range o {
		opt(store)
	}
	if store.client == nil {
		client := resty.New()
		client.SetDisableWarn(true)
		if root.User != nil {
			password, _ := root.User.Password()
			client.SetBasicAuth(root.User.Username(), password)
		}
		store.client = client
	}
	return store
}

func (s *Store) RootURL() url.URL {
	return s.root
}

func (s *Store) RootTitle() string {
	root := s.root
	root.User = nil
	return "☁️" + root.Host
}

func (s *Store) resourceURL(p string) string {
	u := s.root
	u.User = nil
	u.Path = path.Join(u.Path, strings.TrimPrefix(p, s.root.Path))
	return u.String()
}

func (s *Store) ReadDir(ctx context.Context, dirPath string) ([]os.DirEntry, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Depth", "1").
		SetBody(propfindBody).
		Execute("PROPFIND", s.resourceURL(dirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to list webdav directory: %w", err)
	}
	if resp.StatusCode() != http.StatusMultiStatus && resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("webdav listing failed: status %d", resp.StatusCode())
	}

	var ms multiStatus
	if err := xml.Unmarshal(resp.Body(), &ms); err != nil {
		return nil, fmt.Errorf("failed to parse webdav response: %w", err)
	}

	var entries []os.DirEntry
	for i, r := range ms.Responses {
		if i == 0 {
			continue // the collection itself
		}
		name := r.Props.DisplayName
		if name == "" {
			name = path.Base(strings.TrimSuffix(r.Href, "/"))
			if unescaped, err := url.PathUnescape(name); err == nil {
				name = unescaped
			}
		}
		isDir := r.Props.ResourceType.Collection != nil
		entries = append(entries, files.NewDirEntry(name, isDir,
			files.Size(r.Props.GetContentLength),
			files.ModTime(r.Props.GetLastModified.Time),
		))
	}
	return entries, nil
}

func (s *Store) ReadFile(ctx context.Context, filePath string, limit int) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.resourceURL(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("webdav download failed: status %d", resp.StatusCode())
	}
	body := resp.Body()
	if limit > 0 && len(body) > limit {
		body = body[:limit]
	}
	return body, nil
}

func (s *Store) Stat(ctx context.Context, filePath string) (os.FileInfo, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Depth", "0").
		SetBody(propfindBody).
		Execute("PROPFIND", s.resourceURL(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat webdav resource: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, os.ErrNotExist
	}
	if resp.StatusCode() != http.StatusMultiStatus && resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("webdav stat failed: status %d", resp.StatusCode())
	}

	var ms multiStatus
	if err := xml.Unmarshal(resp.Body(), &ms); err != nil {
		return nil, fmt.Errorf("failed to parse webdav response: %w", err)
	}
	if len(ms.Responses) == 0 {
		return nil, os.ErrNotExist
	}

	r := ms.Responses[0]
	name := r.Props.DisplayName
	if name == "" {
		name = path.Base(strings.TrimSuffix(r.Href, "/"))
	}
	isDir := r.Props.ResourceType.Collection != nil
	entry := files.NewDirEntry(name, isDir,
		files.Size(r.Props.GetContentLength),
		files.ModTime(r.Props.GetLastModified.Time),
	)
	return entry.Info()
}
