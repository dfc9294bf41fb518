package filescope

import (
	"fmt"
	"net/url"

	"github.com/filescope/filescope/pkg/config"
	"github.com/filescope/filescope/pkg/files"
	"github.com/filescope/filescope/pkg/files/davfile"
	"github.com/filescope/filescope/pkg/files/ftpfile"
	"github.com/filescope/filescope/pkg/files/httpfile"
	"github.com/filescope/filescope/pkg/files/osfile"
	"github.com/filescope/filescope/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// newStoreForDrive picks the backend by URL scheme.
func newStoreForDrive(d config.Drive) (files.Store, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid drive URL %q: %w", d.URL, err)
	}
	switch u.Scheme {
	case "", "file":
		// file://~ parses the tilde as host, file:///x as path.
		root := fsutils.ExpandHome(u.Host + u.Path)
		if root == "" {
			root = "/"
		}
		return osfile.NewStore(root), nil
	case "ftp":
		store := ftpfile.NewStore(*u)
		store.SetTLS(d.ExplicitTLS, d.ImplicitTLS)
		return store, nil
	case "http", "https":
		return httpfile.NewStore(*u), nil
	case "dav", "davs":
		davURL := *u
		if u.Scheme == "dav" {
			davURL.Scheme = "http"
		} else {
			davURL.Scheme = "https"
		}
		return davfile.NewStore(davURL), nil
	default:
		return nil, fmt.Errorf("unsupported drive scheme %q", u.Scheme)
	}
}

// driveSelector is the drop-down of configured drive presets.
type driveSelector struct {
	*tview.DropDown
	b *Browser

	// syncing suppresses the selected callback while the drop-down is
	// being aligned with a drive opened elsewhere.
	syncing bool
}

func newDriveSelector(b *Browser) *driveSelector {
	s := &driveSelector{
		DropDown: tview.NewDropDown(),
		b:        b,
	}
	s.SetLabel("💾 ")

	names := make([]string, len(b.cfg.Drives))
	for i, d := range b.cfg.Drives {
		names[i] = d.Name
	}
	s.SetOptions(names, func(text string, index int) {
		if s.syncing || index < 0 {
			return
		}
		if drive, ok := b.cfg.DriveByName(text); ok {
			b.setDrive(drive, "")
			b.app.SetFocus(b.tree)
		}
	})
	s.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			b.app.SetFocus(b.tree)
		}
	})
	return s
}

func (b *Browser) selectDriveInDropDown(name string) {
	for i, d := range b.cfg.Drives {
		if d.Name == name {
			b.driveSel.syncing = true
			b.driveSel.SetCurrentOption(i)
			b.driveSel.syncing = false
			return
		}
	}
}
