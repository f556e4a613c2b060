package main

import (
	"fmt"
	"io"

	"tbscale/uiscale"

	"github.com/dustin/go-humanize"
)

type spacingReport struct {
	FontName     string
	FontBytes    int
	FontSize     float64
	RawSpacing   int
	ScreenHeight int
	HaveScreen   bool
	Spacing      int
	RowHeight    int
	EditHeight   int
}

func buildReport(f *uiFont, size float64, fm uiscale.FontMetrics, screen uiscale.ScreenInfo) spacingReport {
	r := spacingReport{
		FontName:   f.Name,
		FontBytes:  len(f.Data),
		FontSize:   size,
		RawSpacing: fm.LineSpacing(),
		Spacing:    uiscale.SafeLineSpacing(fm, screen),
		RowHeight:  uiscale.TableRowHeight(fm, screen),
		EditHeight: uiscale.TextEditHeight(fm, screen),
	}
	if screen != nil {
		r.ScreenHeight, r.HaveScreen = screen.PrimaryScreenHeight()
	}
	return r
}

func (r spacingReport) clamped() bool { return r.Spacing < r.RawSpacing }

func (r spacingReport) write(w io.Writer) {
	fmt.Fprintf(w, "font:             %s (%s)\n", r.FontName, humanize.Bytes(uint64(r.FontBytes)))
	fmt.Fprintf(w, "size:             %gpt\n", r.FontSize)
	fmt.Fprintf(w, "raw line spacing: %dpx\n", r.RawSpacing)
	if r.HaveScreen {
		fmt.Fprintf(w, "screen height:    %dpx (cap %dpx)\n", r.ScreenHeight, r.ScreenHeight/uiscale.MaxScreenFraction)
	} else {
		fmt.Fprintf(w, "screen height:    unavailable\n")
	}
	fmt.Fprintf(w, "line spacing:     %dpx (max %dpx)\n", r.Spacing, uiscale.MaxLineSpacing)
	fmt.Fprintf(w, "table row height: %dpx\n", r.RowHeight)
	fmt.Fprintf(w, "text edit height: %dpx\n", r.EditHeight)
}
