package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

// GridSize is the number of rows and columns of the phrase grid.
const GridSize = 5

// Layout places the phrase grid on the template.
type Layout struct {
	Origin   image.Point
	CellSize int
	Margin   int
}

// DefaultLayout matches the stock blank sheet: a 615x615 grid of 123px cells at (10,295).
func DefaultLayout() Layout {
	return Layout{
		Origin:   image.Pt(10, 295),
		CellSize: 123,
		Margin:   2,
	}
}

func (l Layout) Validate() error {
	if l.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", l.CellSize)
	}
	if l.Margin < 0 || 2*l.Margin >= l.CellSize {
		return fmt.Errorf("margin %d does not fit cell size %d", l.Margin, l.CellSize)
	}
	if l.Origin.X < 0 || l.Origin.Y < 0 {
		return fmt.Errorf("grid origin %v is negative", l.Origin)
	}
	return nil
}

// Region is the whole grid area.
func (l Layout) Region() image.Rectangle {
	side := GridSize * l.CellSize
	return image.Rect(l.Origin.X, l.Origin.Y, l.Origin.X+side, l.Origin.Y+side)
}

// Cell is the full square of the cell at row, col.
func (l Layout) Cell(row, col int) image.Rectangle {
	x := l.Origin.X + col*l.CellSize
	y := l.Origin.Y + row*l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// TextBox is the part of a cell text is wrapped into.
func (l Layout) TextBox(row, col int) image.Rectangle {
	return l.Cell(row, col).Inset(l.Margin)
}

// RenderSheet draws 25 phrases, row-major, onto a copy of template.
// The template itself is left untouched.
func RenderSheet(template image.Image, phrases []string, layout Layout, face font.Face, col color.Color) (*image.NRGBA, error) {
	if len(phrases) != GridSize*GridSize {
		return nil, fmt.Errorf("need %d phrases, got %d", GridSize*GridSize, len(phrases))
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	canvas := imaging.Clone(template)
	if !layout.Region().In(canvas.Bounds()) {
		return nil, fmt.Errorf("grid %v does not fit template %v", layout.Region(), canvas.Bounds())
	}
	for i, p := range phrases {
		DrawTextBox(canvas, face, col, layout.TextBox(i/GridSize, i%GridSize), p)
	}
	return canvas, nil
}
