package bitpack

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-multierror"
)

const (
	// Columns is the number of cells across a character grid
	Columns = 32
	// Rows is the number of cells down a character grid
	Rows = 8
	// Cells is the total number of cells in a character grid, one per
	// 8-bit character code
	Cells = Columns * Rows
)

// Grid describes a 32 by 8 grid of equally sized character cells laid out
// left to right, top to bottom.
type Grid struct {
	Width  int
	Height int
}

// Origin returns the top-left pixel of cell c.
func (g Grid) Origin(c int) image.Point {
	return image.Pt(c%Columns*g.Width, c/Columns*g.Height)
}

// Cell returns the pixel rectangle covered by cell c.
func (g Grid) Cell(c int) image.Rectangle {
	o := g.Origin(c)
	return image.Rect(o.X, o.Y, o.X+g.Width, o.Y+g.Height)
}

// Bounds returns the pixel rectangle covered by the whole grid.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, Columns*g.Width, Rows*g.Height)
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Validate checks the cell width is between 1 and 8, the cell height is
// between minHeight and maxHeight and that the whole grid can be sampled
// from m. Every failed check is reported.
func (g Grid) Validate(m *Mask, minHeight, maxHeight int) error {
	var result *multierror.Error

	if g.Width < 1 || g.Width > TileSize {
		result = multierror.Append(result, fmt.Errorf("%w: cell width %d not in [1, %d]", ErrInvalidGeometry, g.Width, TileSize))
	}
	if g.Height < minHeight || g.Height > maxHeight {
		result = multierror.Append(result, fmt.Errorf("%w: cell height %d not in [%d, %d]", ErrInvalidGeometry, g.Height, minHeight, maxHeight))
	}
	if b := g.Bounds(); !m.Contains(b) {
		result = multierror.Append(result, fmt.Errorf("%w: %s grid needs %dx%d pixels, image is %dx%d", ErrOutOfBounds, g, b.Dx(), b.Dy(), m.Width(), m.Height()))
	}

	return result.ErrorOrNil()
}
