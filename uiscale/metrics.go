package uiscale

import (
	"math"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

// FaceMetrics measures line spacing from an ebiten text face.
type FaceMetrics struct {
	Face text.Face
}

// LineSpacing rounds ascent, descent and line gap up individually, the same
// way text windows measure their line height.
func (m FaceMetrics) LineSpacing() int {
	if m.Face == nil {
		return 0
	}
	metrics := m.Face.Metrics()
	h := math.Ceil(metrics.HAscent) + math.Ceil(metrics.HDescent) + math.Ceil(metrics.HLineGap)
	return max(int(h), 0)
}

// ImageFaceMetrics measures line spacing from a golang.org/x/image face.
type ImageFaceMetrics struct {
	Face font.Face
}

func (m ImageFaceMetrics) LineSpacing() int {
	if m.Face == nil {
		return 0
	}
	return max(m.Face.Metrics().Height.Ceil(), 0)
}

// LineSpacingFunc adapts a plain function to FontMetrics.
type LineSpacingFunc func() int

func (f LineSpacingFunc) LineSpacing() int { return f() }

// FixedMetrics is a FontMetrics that always reports the same spacing.
type FixedMetrics int

func (m FixedMetrics) LineSpacing() int { return int(m) }
