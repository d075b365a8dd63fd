package imagepkg

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// WrapText greedily packs the words of text into lines no wider than maxWidth pixels.
// A single word wider than maxWidth gets a line of its own and is not split.
func WrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// DrawTextBox wraps text to the width of box and draws it top-down from the box's top-left.
// Lines running past the box are drawn anyway.
func DrawTextBox(dst draw.Image, face font.Face, col color.Color, box image.Rectangle, text string) {
	lines := WrapText(face, text, box.Dx())
	m := face.Metrics()
	lineHeight := m.Height.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	y := box.Min.Y + m.Ascent.Ceil()
	for _, line := range lines {
		d.Dot = fixed.P(box.Min.X, y)
		d.DrawString(line)
		y += lineHeight
	}
}
