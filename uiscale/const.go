package uiscale

const (
	// MaxLineSpacing is the absolute ceiling in pixels for a font's line
	// spacing. Some desktops (Linux Mint/Cinnamon) report 500+ pixels.
	MaxLineSpacing = 25

	// MaxScreenFraction limits line spacing to screenHeight/MaxScreenFraction.
	MaxScreenFraction = 10

	// TableRowHeightMultiplier scales the safe line spacing into a table
	// row height.
	TableRowHeightMultiplier = 1.6

	// TextEditHeightMultiplier scales the safe line spacing into the height
	// of a single-line text edit field.
	TextEditHeightMultiplier = 1.5
)
