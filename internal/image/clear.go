package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

var (
	paper = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ink   = color.NRGBA{A: 0xff}
)

// ClearSheet returns a copy of template with every cell whitened.
// A 1px border around each cell is kept so the grid lines survive.
func ClearSheet(template image.Image, layout Layout) *image.NRGBA {
	canvas := imaging.Clone(template)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			r := layout.Cell(row, col).Inset(1).Intersect(canvas.Bounds())
			draw.Draw(canvas, r, image.NewUniform(paper), image.Point{}, draw.Src)
		}
	}
	return canvas
}

// BlankTemplate builds a plain white sheet with the grid drawn in black.
// It is used when no template image is configured.
func BlankTemplate(layout Layout) *image.NRGBA {
	region := layout.Region()
	w := region.Max.X + layout.Origin.X
	h := region.Max.Y + layout.Origin.X
	canvas := imaging.New(w, h, paper)
	draw.Draw(canvas, region.Inset(-1), image.NewUniform(ink), image.Point{}, draw.Src)
	return ClearSheet(canvas, layout)
}
