package uiscale

// FontMetrics reports the recommended distance in pixels between the
// baselines of two consecutive lines of text.
type FontMetrics interface {
	LineSpacing() int
}

// ScreenInfo reports the height in pixels of the primary screen. ok is
// false when no screen is attached or it could not be queried.
type ScreenInfo interface {
	PrimaryScreenHeight() (height int, ok bool)
}

// SafeLineSpacing returns the line spacing reported by fm, capped to the
// lesser of MaxLineSpacing and a tenth of the primary screen height. A nil
// screen, one that reports no height, or one that panics leaves only the
// absolute cap.
func SafeLineSpacing(fm FontMetrics, screen ScreenInfo) int {
	spacing := fm.LineSpacing()
	limit := MaxLineSpacing
	if h, ok := screenHeight(screen); ok {
		limit = min(limit, h/MaxScreenFraction)
	}
	return min(spacing, limit)
}

// screenHeight treats a panicking provider the same as a missing screen.
func screenHeight(screen ScreenInfo) (height int, ok bool) {
	if screen == nil {
		return 0, false
	}
	defer func() {
		if r := recover(); r != nil {
			height, ok = 0, false
		}
	}()
	h, ok := screen.PrimaryScreenHeight()
	if !ok || h <= 0 {
		return 0, false
	}
	return h, true
}
