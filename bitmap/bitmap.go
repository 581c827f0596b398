/*
Package bitmap implements a plain 1-bit raster encoder and decoder.

Each row of the image is packed eight pixels to a byte, most significant bit
first, with a set bit for a lit pixel. Rows follow each other with no header
or padding so the output is exactly height * floor(width / 8) bytes. Any
pixels past the last whole group of eight in a row are dropped unless strict
encoding is requested.
*/
package bitmap

import (
	"errors"
	"image"
	"image/color"
)

const pixelsPerByte = 8

// Palette is used for decoded images; index 0 is an unlit pixel and index 1
// is a lit pixel.
var Palette = color.Palette{color.Black, color.White}

var (
	// ErrPartialByte is returned by strict encoding when the image width is
	// not a multiple of 8
	ErrPartialByte = errors.New("bitmap: width is not a multiple of 8")

	errNotEnough = errors.New("bitmap: not enough image data")
	errBadWidth  = errors.New("bitmap: width must be at least 8 pixels")
)

// Options are the encoding parameters.
type Options struct {
	// Strict rejects images whose width would otherwise be truncated to a
	// multiple of 8.
	Strict bool
}

// Size returns the number of bytes needed to encode an image of the given
// dimensions.
func Size(width, height int) int {
	return height * (width / pixelsPerByte)
}

func newImage(width, height int) *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, width, height), Palette)
}
