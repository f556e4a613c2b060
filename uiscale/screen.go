package uiscale

import "github.com/hajimehoshi/ebiten/v2"

// monitorSize is swapped out in tests; ebiten needs a running display.
var monitorSize = func() (int, int, bool) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0, false
	}
	w, h := m.Size()
	return w, h, true
}

// PrimaryMonitor reports the height of ebiten's current monitor.
type PrimaryMonitor struct{}

// PrimaryScreenHeight never panics. Platforms without a usable display
// report ok=false instead.
func (PrimaryMonitor) PrimaryScreenHeight() (height int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			height, ok = 0, false
		}
	}()
	_, h, found := monitorSize()
	if !found || h <= 0 {
		return 0, false
	}
	return h, true
}

// FixedScreen reports a constant height. Zero or negative means no screen.
type FixedScreen int

func (s FixedScreen) PrimaryScreenHeight() (int, bool) {
	if s <= 0 {
		return 0, false
	}
	return int(s), true
}

// NoScreen never reports a screen.
type NoScreen struct{}

func (NoScreen) PrimaryScreenHeight() (int, bool) { return 0, false }
