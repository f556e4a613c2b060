package main

import (
	"flag"
	"log"
	"os"

	"tbscale/uiscale"
)

var (
	fontPath     string
	fontSize     float64
	screenHeight int
	showWindow   bool
	doDebug      bool
	doSave       bool
)

func main() {
	flag.StringVar(&dataDirPath, "data", dataDirPath, "directory holding settings.json")
	flag.StringVar(&fontPath, "font", "", "TTF/OTF font file (default: built-in Go Regular)")
	flag.Float64Var(&fontSize, "size", 0, "font size in points (default from settings)")
	flag.IntVar(&screenHeight, "screenHeight", 0, "primary screen height override in pixels")
	flag.BoolVar(&showWindow, "window", false, "open a preview window laid out with the safe spacing")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.BoolVar(&doSave, "save", false, "write the effective settings back to settings.json")
	flag.Parse()

	setupLogging(doDebug)
	loadSettings()
	applyFlags()
	setDebugLogging(gs.Debug)

	f, err := loadFont(gs.FontPath)
	if err != nil {
		log.Fatalf("failed to load font: %v", err)
	}

	screen := screenInfo()
	fm := uiscale.FaceMetrics{Face: f.face(gs.FontSize)}
	crossCheck(f, gs.FontSize, fm)

	r := buildReport(f, gs.FontSize, fm, screen)
	if r.clamped() {
		logWarn("font reported %dpx line spacing; using %dpx", r.RawSpacing, r.Spacing)
	}
	r.write(os.Stdout)

	if doSave {
		saveSettings()
	}

	if showWindow {
		if err := runPreview(f.face(gs.FontSize), r); err != nil {
			logError("preview: %v", err)
			os.Exit(1)
		}
	}
}

// applyFlags overlays explicitly set flags on the loaded settings.
func applyFlags() {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "font":
			gs.FontPath = fontPath
		case "size":
			if fontSize > 0 {
				gs.FontSize = fontSize
			}
		case "screenHeight":
			gs.ScreenHeight = screenHeight
		case "debug":
			gs.Debug = doDebug
		}
	})
}

func screenInfo() uiscale.ScreenInfo {
	if gs.ScreenHeight > 0 {
		logDebug("screen height override %dpx", gs.ScreenHeight)
		return uiscale.FixedScreen(gs.ScreenHeight)
	}
	return uiscale.PrimaryMonitor{}
}

// crossCheck logs the x/image measurement next to the ebiten one. They can
// differ by a pixel from rounding; larger gaps point at a broken font table.
func crossCheck(f *uiFont, size float64, fm uiscale.FontMetrics) {
	if debugLogger == nil {
		return
	}
	face, err := f.imageFace(size)
	if err != nil {
		logDebug("cross-check: %v", err)
		return
	}
	defer face.Close()
	logDebug("line spacing: ebiten %dpx, x/image %dpx",
		fm.LineSpacing(), uiscale.ImageFaceMetrics{Face: face}.LineSpacing())
}
