package main

import (
	"bytes"
	"fmt"
	"os"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// uiFont is the loaded UI font in both toolkits' representations.
type uiFont struct {
	Name   string
	Data   []byte
	Source *text.GoTextFaceSource
}

const builtinFontName = "Go Regular (built-in)"

// loadFont reads path, falling back to Go Regular when path is empty or the
// file cannot be used.
func loadFont(path string) (*uiFont, error) {
	if path != "" {
		f, err := parseFont(path)
		if err == nil {
			return f, nil
		}
		logWarn("font %v: %v; using %v", path, err, builtinFontName)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse built-in font: %w", err)
	}
	return &uiFont{Name: builtinFontName, Data: goregular.TTF, Source: src}, nil
}

func parseFont(path string) (*uiFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &uiFont{Name: path, Data: data, Source: src}, nil
}

func (f *uiFont) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Source, Size: size}
}

// imageFace builds an x/image face from the same bytes. Callers close it.
func (f *uiFont) imageFace(size float64) (font.Face, error) {
	otf, err := opentype.Parse(f.Data)
	if err != nil {
		return nil, fmt.Errorf("opentype: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype face: %w", err)
	}
	return face, nil
}
