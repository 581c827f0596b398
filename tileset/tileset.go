/*
Package tileset implements a deduplicated 256 character 1-bit font encoder
and decoder for characters taller than a single 8 by 8 hardware tile.

The source image is a grid of 32 by 8 character cells, each up to 8 pixels
wide and between 9 and 16 pixels tall. Every cell is split into a main tile
covering its top 8 rows and a remainder tile covering the rest. Each tile is
packed into 8 bytes, one per row with the leftmost pixel in the lowest used
bit, and identical tiles are stored only once.

The file is written as 512 little-endian 16-bit tile indices, the main then
the remainder tile of each character in character order, followed by a
little-endian 16-bit count of unique tiles and finally that many 8 byte tiles
in the order they were first seen.
*/
package tileset

import (
	"encoding/hex"
	"errors"
	"image"
	"image/color"

	"github.com/bodgit/glyphpack/bitpack"
)

const (
	// DefaultWidth is the default cell width in pixels
	DefaultWidth = 6
	// DefaultHeight is the default cell height in pixels
	DefaultHeight = 10

	// Slots is the number of tile references in the header, two for
	// each character
	Slots      = bitpack.Cells * 2
	mainHeight = bitpack.TileSize
	minHeight  = mainHeight + 1
	maxHeight  = mainHeight + bitpack.TileSize
	headerSize = Slots*2 + 2
	tileBytes  = bitpack.TileSize
)

// Palette is used for rendered images; index 0 is an unlit pixel and index 1
// is a lit pixel.
var Palette = color.Palette{color.Black, color.White}

var errBadGrid = errors.New("tileset: cell must be between 1x9 and 8x16")

// DefaultGrid returns the standard 6 by 10 cell grid.
func DefaultGrid() bitpack.Grid {
	return bitpack.Grid{Width: DefaultWidth, Height: DefaultHeight}
}

// Tileset is a deduplicated character set. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Tileset struct {
	refs [Slots]uint16
	pool Pool
}

// Len returns the number of unique tiles
func (ts *Tileset) Len() int {
	return ts.pool.Len()
}

// Ref returns the tile index stored in the given header slot. Slot 2c holds
// the main tile of character c and slot 2c+1 its remainder.
func (ts *Tileset) Ref(slot int) uint16 {
	return ts.refs[slot]
}

// Lookup returns the tile referenced by the given header slot
func (ts *Tileset) Lookup(slot int) bitpack.Tile {
	t, _ := ts.pool.Tile(ts.refs[slot])
	return t
}

// Tiles returns the unique tiles in index order
func (ts *Tileset) Tiles() []bitpack.Tile {
	return ts.pool.Tiles()
}

// Record describes the tiles used by a single character.
type Record struct {
	Cell          int    `csv:"cell"`
	Main          uint16 `csv:"main"`
	Remainder     uint16 `csv:"remainder"`
	MainTile      string `csv:"main_tile"`
	RemainderTile string `csv:"remainder_tile"`
}

// Records returns one Record per character in character order
func (ts *Tileset) Records() []Record {
	records := make([]Record, bitpack.Cells)
	for c := range records {
		m, r := ts.Lookup(c*2), ts.Lookup(c*2+1)
		records[c] = Record{
			Cell:          c,
			Main:          ts.refs[c*2],
			Remainder:     ts.refs[c*2+1],
			MainTile:      hex.EncodeToString(m[:]),
			RemainderTile: hex.EncodeToString(r[:]),
		}
	}
	return records
}

// Image renders the characters back into a grid using g, which should be the
// grid used to encode them.
func (ts *Tileset) Image(g bitpack.Grid) (image.Image, error) {
	if g.Width < 1 || g.Width > bitpack.TileSize || g.Height < minHeight || g.Height > maxHeight {
		return nil, errBadGrid
	}

	m := image.NewPaletted(g.Bounds(), Palette)
	for c := 0; c < bitpack.Cells; c++ {
		o := g.Origin(c)
		top, bottom := ts.Lookup(c*2), ts.Lookup(c*2+1)
		for y := 0; y < g.Height; y++ {
			t, ty := top, y
			if y >= mainHeight {
				t, ty = bottom, y-mainHeight
			}
			for x := 0; x < g.Width; x++ {
				if t.On(x, ty, g.Width) {
					m.SetColorIndex(o.X+x, o.Y+y, 1)
				}
			}
		}
	}

	return m, nil
}
