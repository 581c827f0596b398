/*
Package bitpack implements the 1-bit sampling and packing primitives shared
by the bitmap, charset and tileset encoders.

A pixel is on if the red channel of its non-premultiplied 8-bit RGBA value
is greater than 128; no other channel is considered. Rows of pixels are
packed into bytes in one of two orders:

	MSB-first:  acc = acc<<1 | on, so the first pixel of eight lands in bit 7
	LSB-first:  acc = acc>>1 + 0x80*on, so after w pixels the first pixel
	            lands in bit 8-w and the last in bit 7

A Tile is always 8 bytes, one per row, with any rows past the sampled height
left as zero.
*/
package bitpack

import (
	"errors"
	"image/color"
)

const (
	// TileSize is both the number of rows in a Tile and the maximum number
	// of pixels packed into a single row
	TileSize  = 8
	threshold = 128
)

var (
	// ErrOutOfBounds is returned when sampling would read pixels outside of
	// the source image
	ErrOutOfBounds = errors.New("bitpack: sample out of bounds")
	// ErrInvalidGeometry is returned for tile or cell dimensions that
	// cannot be packed
	ErrInvalidGeometry = errors.New("bitpack: invalid geometry")
)

// Tile is a packed 1-bit tile, one byte per row. Two tiles are equal if and
// only if their bytes are equal.
type Tile [TileSize]byte

// On reports whether c counts as a lit pixel.
func On(c color.Color) bool {
	return color.NRGBAModel.Convert(c).(color.NRGBA).R > threshold
}

// PackMSB packs up to eight bits shifting each new bit in from the right.
func PackMSB(bits []bool) byte {
	var b byte
	for _, on := range bits {
		b <<= 1
		if on {
			b++
		}
	}
	return b
}

// PackLSB packs up to eight bits shifting the accumulator right before each
// new bit is added at the top.
func PackLSB(bits []bool) byte {
	var b byte
	for _, on := range bits {
		b >>= 1
		if on {
			b += 0x80
		}
	}
	return b
}

// On reports whether pixel (x, y) of a tile packed LSB-first from rows w
// pixels wide is lit.
func (t Tile) On(x, y, w int) bool {
	return t[y]>>(TileSize-w+x)&1 != 0
}
