package imagepkg

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontConfig describes how sheet text is drawn.
// An empty Path selects the bundled Go Regular font.
type FontConfig struct {
	Path  string
	Size  float64
	DPI   float64
	Color color.NRGBA
}

func DefaultFontConfig() FontConfig {
	return FontConfig{
		Size:  20,
		DPI:   72,
		Color: color.NRGBA{A: 0xff},
	}
}

// LoadFace parses the configured font and returns a face at cfg.Size.
// The caller owns the face and should Close it.
func LoadFace(cfg FontConfig) (font.Face, error) {
	data := goregular.TTF
	if cfg.Path != "" {
		b, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", cfg.Path, err)
		}
		data = b
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 72
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", cfg.Size)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    cfg.Size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// ParseHexColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}
