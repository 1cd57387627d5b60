// Package atlas loads sprite-sheet images and derives the normalized
// atlas rectangles sprites reference. Images decode to RGBA pixels ready
// for an RGBA8-unorm texture upload; rectangles are in normalized [0,1]
// texture coordinates as consumed by the sprite vertex stage.
package atlas

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // sprite sheets are commonly PNG
	"io"
	"os"

	_ "golang.org/x/image/bmp" // the engine's original assets are BMP

	"github.com/gogpu/sprite"
)

// Load reads and decodes an image file into RGBA pixels.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("atlas: decoding %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes a BMP or PNG image into RGBA pixels.
func Decode(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	sprite.Logger().Debug("decoded atlas image",
		"format", format, "bounds", src.Bounds())

	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}

// Grid splits the texture into cols*rows equal cells and returns their
// atlas rectangles in row-major order (left to right, top to bottom).
func Grid(cols, rows int) []sprite.AtlasRect {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	out := make([]sprite.AtlasRect, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			out = append(out, Cell(cols, rows, col, row))
		}
	}
	return out
}

// Cell returns the atlas rectangle of one cell of a cols*rows grid.
func Cell(cols, rows, col, row int) sprite.AtlasRect {
	w := 1 / float32(cols)
	h := 1 / float32(rows)
	return sprite.AtlasRect{
		U: float32(col) * w,
		V: float32(row) * h,
		W: w,
		H: h,
	}
}
