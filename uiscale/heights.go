package uiscale

// TableRowHeight returns the pixel height of a table row for the given font.
func TableRowHeight(fm FontMetrics, screen ScreenInfo) int {
	return scaled(SafeLineSpacing(fm, screen), TableRowHeightMultiplier)
}

// TextEditHeight returns the pixel height of a single-line text edit field.
func TextEditHeight(fm FontMetrics, screen ScreenInfo) int {
	return scaled(SafeLineSpacing(fm, screen), TextEditHeightMultiplier)
}

func scaled(spacing int, mult float64) int {
	return int(float64(spacing) * mult)
}
