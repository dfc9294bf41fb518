package filescope

import (
	"path"
	"strings"

	"github.com/filescope/filescope/pkg/config"
	"github.com/filescope/filescope/pkg/files"
	"github.com/filescope/filescope/pkg/logging"
	"github.com/filescope/filescope/pkg/state"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Browser is the root primitive: address row on top, tree+log column
// on the left, preview panes on the right, command bar at the bottom.
type Browser struct {
	*tview.Flex
	app    App
	cfg    *config.Config
	logger *zap.Logger
	o      browserOptions

	store files.Store
	drive config.Drive

	current      *files.DirContext
	currentEntry *files.EntryWithDirPath

	crumbs   *breadcrumbs
	driveSel *driveSelector
	tree     *treePane
	search   *searchBar
	preview  *previewPane
	data     *dataPane
	logPane  *logPane
	cmdBar   *commandBar
	bottom   *bottomBar

	bindings []binding
}

type browserOptions struct {
	logFilePath  string
	initialDrive string
	newStore     func(config.Drive) (files.Store, error)
}

type BrowserOption func(o *browserOptions)

// WithLogFile sets the file the logger writes to in addition to the
// log pane. Empty means pane only.
func WithLogFile(path string) BrowserOption {
	return func(o *browserOptions) {
		o.logFilePath = path
	}
}

// WithInitialDrive overrides the persisted drive choice by preset name.
func WithInitialDrive(name string) BrowserOption {
	return func(o *browserOptions) {
		o.initialDrive = name
	}
}

// WithStoreFactory replaces the scheme-based backend factory.
func WithStoreFactory(f func(config.Drive) (files.Store, error)) BrowserOption {
	return func(o *browserOptions) {
		o.newStore = f
	}
}

func NewBrowser(app App, cfg *config.Config, options ...BrowserOption) *Browser {
	b := &Browser{
		app:      app,
		cfg:      cfg,
		bindings: defaultBindings(),
		o: browserOptions{
			newStore: newStoreForDrive,
		},
	}
	for _, option := range options {
		option(&b.o)
	}

	b.logPane = newLogPane(app)
	logger, err := logging.New(b.logPane, b.o.logFilePath)
	if err != nil {
		// Fall back to the pane-only logger, which cannot fail.
		logger, _ = logging.New(b.logPane, "")
	}
	b.logger = logger
	logging.SetGlobal(logger)

	b.crumbs = newBreadcrumbs(b)
	b.tree = newTreePane(b)
	b.search = newSearchBar(b)
	b.preview = newPreviewPane(b)
	b.data = newDataPane(b)
	b.cmdBar = newCommandBar(b)
	b.driveSel = newDriveSelector(b)
	b.bottom = newBottomBar(b)

	b.createLayout()
	b.SetInputCapture(b.inputCapture)

	b.openInitialDrive()

	return b
}

func (b *Browser) createLayout() {
	address := tview.NewFlex().
		AddItem(b.driveSel, 14, 0, false).
		AddItem(b.crumbs, 0, 1, false)

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.search, 1, 0, false).
		AddItem(b.tree, 0, 3, true).
		AddItem(b.logPane, 0, 1, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.preview, 0, 2, false).
		AddItem(b.data, 0, 1, false)

	main := tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(right, 0, 2, false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(address, 1, 0, false).
		AddItem(main, 0, 1, true).
		AddItem(b.cmdBar, 1, 0, false).
		AddItem(b.bottom, 1, 0, false)
}

// openInitialDrive restores the persisted drive and directory, unless
// an explicit drive was requested or nothing was persisted.
func (b *Browser) openInitialDrive() {
	if len(b.cfg.Drives) == 0 {
		b.logger.Warn("no drives configured")
		return
	}
	drive := b.cfg.Drives[0]
	startDir := ""

	if b.o.initialDrive != "" {
		d, ok := b.cfg.DriveByName(b.o.initialDrive)
		if !ok {
			b.logger.Warn("unknown drive", zap.String("drive", b.o.initialDrive))
		} else {
			drive = d
		}
	} else if persisted, err := state.Get(); err == nil && persisted.Drive != "" {
		if d, ok := b.cfg.DriveByName(persisted.Drive); ok {
			drive = d
			startDir = persisted.CurrentDir
		}
	}

	b.setDrive(drive, startDir)
	b.selectDriveInDropDown(drive.Name)
}

// setDrive swaps the backend and re-roots the tree. startDir overrides
// the drive's own root path when non-empty. The previous selection is
// cleared either way.
func (b *Browser) setDrive(drive config.Drive, startDir string) {
	store, err := b.o.newStore(drive)
	if err != nil {
		b.logger.Error("cannot open drive",
			zap.String("drive", drive.Name), zap.Error(err))
		return
	}
	b.drive = drive
	b.store = store
	b.currentEntry = nil
	b.current = nil

	dirPath := startDir
	if dirPath == "" {
		dirPath = store.RootURL().Path
	}
	if dirPath == "" {
		dirPath = "/"
	}

	b.preview.showEntry(nil)
	b.data.showEntry(nil)
	b.tree.openRoot(dirPath)
	b.logger.Info("drive opened",
		zap.String("drive", drive.Name), zap.String("dir", dirPath))
}

func (b *Browser) setBreadcrumbs() {
	if b.store == nil || b.current == nil {
		b.crumbs.set(nil)
		return
	}
	rootPath := b.store.RootURL().Path
	if rootPath == "" {
		rootPath = "/"
	}
	rootTitle := strings.TrimSuffix(b.store.RootTitle(), "/")

	items := []crumb{{title: rootTitle, path: rootPath}}

	relative := strings.TrimPrefix(strings.TrimPrefix(b.current.Path(), rootPath), "/")
	relative = strings.TrimSuffix(relative, "/")
	if relative != "" {
		crumbPath := rootPath
		for _, segment := range strings.Split(relative, "/") {
			if segment == "" {
				continue
			}
			crumbPath = path.Join(crumbPath, segment)
			items = append(items, crumb{title: segment, path: crumbPath})
		}
	}
	b.crumbs.set(items)
}

// inTextEntry reports whether a typed rune belongs to a text input
// rather than to the global keymap.
func (b *Browser) inTextEntry() bool {
	return b.cmdBar.HasFocus() || b.search.HasFocus() || b.driveSel.HasFocus()
}

func (b *Browser) selectedPath() string {
	if b.currentEntry != nil {
		return b.currentEntry.FullName()
	}
	if b.current != nil {
		return b.current.Path()
	}
	return ""
}
