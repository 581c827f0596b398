package bitmap

import (
	"image"
	"io"
)

func readAll(r io.Reader, width int) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(b)%(width/pixelsPerByte) != 0 {
		return nil, errNotEnough
	}
	return b, nil
}

// Decode reads a packed 1-bit bitmap from r. The width is the width of the
// original image; any pixels that were dropped when encoding are not
// recovered so the returned image is floor(width / 8) * 8 pixels wide.
func Decode(r io.Reader, width int) (image.Image, error) {
	if width < pixelsPerByte {
		return nil, errBadWidth
	}

	b, err := readAll(r, width)
	if err != nil {
		return nil, err
	}

	stride := width / pixelsPerByte
	m := newImage(stride*pixelsPerByte, len(b)/stride)

	for i, v := range b {
		x, y := i%stride*pixelsPerByte, i/stride
		for bit := 0; bit < pixelsPerByte; bit++ {
			m.SetColorIndex(x+bit, y, v>>(7-bit)&1)
		}
	}

	return m, nil
}
