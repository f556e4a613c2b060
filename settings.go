package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const SETTINGS_VERSION = 1

const settingsFile = "settings.json"

var dataDirPath = "data"

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

var gsdef settings = settings{
	Version:  SETTINGS_VERSION,
	FontSize: 14,
}

type settings struct {
	Version int

	// FontPath is a TTF/OTF file. Empty selects the built-in Go Regular.
	FontPath string
	FontSize float64

	// ScreenHeight overrides the monitor query when positive.
	ScreenHeight int

	Debug bool
}

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("settings %v: %v", path, err)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		logWarn("settings %v: version %d, expected %d; using defaults", path, tmp.Version, SETTINGS_VERSION)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.FontSize <= 0 {
		tmp.FontSize = gsdef.FontSize
	}
	gs = tmp
	settingsLoaded = true
	return true
}

func saveSettings() {
	gs.Version = SETTINGS_VERSION
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.MkdirAll(dataDirPath, 0755); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(dataDirPath, settingsFile), data, 0644); err != nil {
		logError("save settings: %v", err)
	}
}
