package main

import (
	"bytes"
	"strings"
	"testing"

	"tbscale/uiscale"
)

func TestBuildReport(t *testing.T) {
	f, err := loadFont("")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name      string
		raw       int
		screen    uiscale.ScreenInfo
		spacing   int
		row, edit int
		clamped   bool
	}{
		{"bogus metrics", 500, uiscale.NoScreen{}, 25, 40, 37, true},
		{"short screen", 10, uiscale.FixedScreen(50), 5, 8, 7, true},
		{"normal", 17, uiscale.FixedScreen(1080), 17, 27, 25, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildReport(f, 14, uiscale.FixedMetrics(tt.raw), tt.screen)
			if r.RawSpacing != tt.raw || r.Spacing != tt.spacing {
				t.Fatalf("spacing raw=%d safe=%d want %d/%d", r.RawSpacing, r.Spacing, tt.raw, tt.spacing)
			}
			if r.RowHeight != tt.row || r.EditHeight != tt.edit {
				t.Fatalf("heights row=%d edit=%d want %d/%d", r.RowHeight, r.EditHeight, tt.row, tt.edit)
			}
			if r.clamped() != tt.clamped {
				t.Fatalf("clamped = %v want %v", r.clamped(), tt.clamped)
			}
		})
	}
}

func TestReportWrite(t *testing.T) {
	r := spacingReport{
		FontName:   "ui.ttf",
		FontBytes:  2048,
		FontSize:   14,
		RawSpacing: 512,
		Spacing:    25,
		RowHeight:  40,
		EditHeight: 37,
	}
	var buf bytes.Buffer
	r.write(&buf)
	out := buf.String()
	for _, want := range []string{"ui.ttf", "raw line spacing: 512px", "screen height:    unavailable", "line spacing:     25px", "table row height: 40px", "text edit height: 37px"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}

	r.HaveScreen, r.ScreenHeight = true, 800
	buf.Reset()
	r.write(&buf)
	if !strings.Contains(buf.String(), "screen height:    800px (cap 80px)") {
		t.Fatalf("report missing screen line:\n%s", buf.String())
	}
}
