package bitpack

import (
	"fmt"
	"image"

	"github.com/boljen/go-bitmap"
)

// Mask is an image reduced to one bit per pixel. Coordinates are relative to
// the top-left corner of the source image bounds.
type Mask struct {
	bits          bitmap.Bitmap
	width, height int
}

// NewMask thresholds every pixel of m.
func NewMask(m image.Image) *Mask {
	b := m.Bounds()
	mask := &Mask{
		bits:   bitmap.New(b.Dx() * b.Dy()),
		width:  b.Dx(),
		height: b.Dy(),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if On(m.At(x, y)) {
				mask.bits.Set((y-b.Min.Y)*mask.width+x-b.Min.X, true)
			}
		}
	}
	return mask
}

// Width returns the width of the mask in pixels
func (m *Mask) Width() int {
	return m.width
}

// Height returns the height of the mask in pixels
func (m *Mask) Height() int {
	return m.height
}

// Bounds returns the rectangle covered by the mask, always anchored at (0, 0)
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Contains reports whether every pixel of r can be sampled.
func (m *Mask) Contains(r image.Rectangle) bool {
	return r.Empty() || r.In(m.Bounds())
}

// On reports whether the pixel at (x, y) is lit. It panics if the pixel is
// outside of the mask, callers are expected to check with Contains first.
func (m *Mask) On(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("bitpack: pixel (%d, %d) outside %dx%d mask", x, y, m.width, m.height))
	}
	return m.bits.Get(y*m.width + x)
}

func (m *Mask) row(x, y, w int) []bool {
	bits := make([]bool, w)
	for i := range bits {
		bits[i] = m.On(x+i, y)
	}
	return bits
}

// Row packs w pixels starting at (x, y) MSB-first.
func (m *Mask) Row(x, y, w int) (byte, error) {
	if w < 0 || w > TileSize {
		return 0, fmt.Errorf("%w: row width %d", ErrInvalidGeometry, w)
	}
	if r := image.Rect(x, y, x+w, y+1); !m.Contains(r) {
		return 0, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r, m.Bounds())
	}
	return PackMSB(m.row(x, y, w)), nil
}

// Tile packs the w by h region at (x, y) LSB-first, one byte per row. Rows
// from h onwards are zero.
func (m *Mask) Tile(x, y, w, h int) (Tile, error) {
	var t Tile
	if w < 0 || w > TileSize || h < 0 || h > TileSize {
		return t, fmt.Errorf("%w: tile %dx%d", ErrInvalidGeometry, w, h)
	}
	if r := image.Rect(x, y, x+w, y+h); !m.Contains(r) {
		return t, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r, m.Bounds())
	}
	for i := 0; i < h; i++ {
		t[i] = PackLSB(m.row(x, y+i, w))
	}
	return t, nil
}
