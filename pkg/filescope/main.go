package filescope

import (
	"github.com/filescope/filescope/pkg/config"
	"github.com/rivo/tview"
)

// Main loads the configuration and runs the browser until quit.
func Main(cfgFile, driveName string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	app := tview.NewApplication()
	browser := NewBrowser(tviewApp{app}, cfg,
		WithLogFile(config.LogFilePath()),
		WithInitialDrive(driveName),
	)
	app.EnableMouse(true)
	app.SetRoot(browser, true)
	return app.Run()
}
