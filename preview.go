package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	previewW    = 480
	previewH    = 360
	previewRows = 6
	previewPad  = 12
)

var (
	previewBG     = color.RGBA{0x20, 0x22, 0x26, 0xff}
	previewRowA   = color.RGBA{0x2c, 0x2f, 0x35, 0xff}
	previewRowB   = color.RGBA{0x34, 0x38, 0x3f, 0xff}
	previewHeader = color.RGBA{0x3f, 0x6f, 0xb5, 0xff}
	previewEdit   = color.RGBA{0x14, 0x15, 0x18, 0xff}
	previewBorder = color.RGBA{0x88, 0x8c, 0x94, 0xff}
	previewText   = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
)

// previewGame lays out a sample table and text field from a report.
type previewGame struct {
	face   text.Face
	report spacingReport
}

func (g *previewGame) Update() error { return nil }

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(previewBG)

	w := float32(previewW - 2*previewPad)
	y := float32(previewPad)
	row := float32(g.report.RowHeight)

	vector.DrawFilledRect(screen, previewPad, y, w, row, previewHeader, false)
	g.drawLabel(screen, "Button / Action", previewPad, y, row)
	y += row
	for i := 0; i < previewRows; i++ {
		clr := previewRowA
		if i%2 == 1 {
			clr = previewRowB
		}
		vector.DrawFilledRect(screen, previewPad, y, w, row, clr, false)
		g.drawLabel(screen, fmt.Sprintf("Row %d", i+1), previewPad, y, row)
		y += row
	}

	y += previewPad
	edit := float32(g.report.EditHeight)
	vector.DrawFilledRect(screen, previewPad, y, w, edit, previewEdit, false)
	vector.StrokeRect(screen, previewPad, y, w, edit, 1, previewBorder, false)
	g.drawLabel(screen, fmt.Sprintf("spacing %dpx (raw %dpx)", g.report.Spacing, g.report.RawSpacing), previewPad, y, edit)
}

// drawLabel vertically centers s inside a band of height h.
func (g *previewGame) drawLabel(dst *ebiten.Image, s string, x, y, h float32) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignStart
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(x+previewPad/2), float64(y+h/2))
	op.ColorScale.ScaleWithColor(previewText)
	text.Draw(dst, s, g.face, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewW, previewH
}

func runPreview(face text.Face, r spacingReport) error {
	ebiten.SetWindowTitle("Line spacing preview")
	ebiten.SetWindowSize(previewW, previewH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&previewGame{face: face, report: r}); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
