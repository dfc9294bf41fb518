package state

import (
	"os"
	"path/filepath"

	"github.com/filescope/filescope/pkg/config"
	"github.com/filescope/filescope/pkg/fsutils"
)

const stateFileName = "filescope-state.json"

var settingsDirPath = config.SettingsDirPath()

// State is the small session snapshot restored on startup. Saving is
// best effort: a browser must never fail because its state file is
// unwritable.
type State struct {
	Drive        string `json:"drive,omitempty"`
	CurrentDir   string `json:"current_dir,omitempty"`
	CurrentEntry string `json:"current_entry,omitempty"`
}

func stateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(v ...any) {
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func Get() (*State, error) {
	var state State
	return &state, readJSON(stateFilePath(), false, &state)
}

func SaveCurrentDir(drive, currentDir string) {
	save(func(state *State) {
		state.Drive = drive
		state.CurrentDir = currentDir
	})
}

func SaveCurrentEntry(name string) {
	save(func(state *State) {
		state.CurrentEntry = name
	})
}

func save(f func(state *State)) {
	filePath := stateFilePath()
	var state State
	if err := readJSON(filePath, false, &state); err != nil {
		logErr("state: error reading state file:", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("state: error creating settings directory:", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("state: settings path is not a directory")
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("state: error writing state file:", err)
	}
}
