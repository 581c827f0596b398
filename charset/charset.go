/*
Package charset implements a fixed 256 character 1-bit font encoder and
decoder.

The source image is a grid of 32 by 8 character cells, each cell being the
same size and no more than 8 by 8 pixels. Every cell is packed into an 8 byte
record, one byte per row with the leftmost pixel in the lowest used bit and
any rows below the cell left as zero. The records are written in character
order with no header so the output is always exactly 2048 bytes and character
n can be found at offset n * 8.
*/
package charset

import (
	"image"
	"image/color"

	"github.com/bodgit/glyphpack/bitpack"
)

const (
	// DefaultWidth is the default cell width in pixels
	DefaultWidth = 4
	// DefaultHeight is the default cell height in pixels
	DefaultHeight = 6

	recordSize = bitpack.TileSize
	// Size is the size in bytes of every encoded character set
	Size = bitpack.Cells * recordSize
)

// Palette is used for decoded images; index 0 is an unlit pixel and index 1
// is a lit pixel.
var Palette = color.Palette{color.Black, color.White}

// DefaultGrid returns the standard 4 by 6 cell grid.
func DefaultGrid() bitpack.Grid {
	return bitpack.Grid{Width: DefaultWidth, Height: DefaultHeight}
}

func validate(m *bitpack.Mask, g bitpack.Grid) error {
	return g.Validate(m, 1, bitpack.TileSize)
}

func drawTile(m *image.Paletted, p image.Point, t bitpack.Tile, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if t.On(x, y, w) {
				m.SetColorIndex(p.X+x, p.Y+y, 1)
			}
		}
	}
}
