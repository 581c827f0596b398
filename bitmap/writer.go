package bitmap

import (
	"fmt"
	"image"
	"io"

	"github.com/bodgit/glyphpack/bitpack"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m *bitpack.Mask) error {
	row := make([]byte, 0, m.Width()/pixelsPerByte)
	for y := 0; y < m.Height(); y++ {
		row = row[:0]
		for x := 0; x+pixelsPerByte <= m.Width(); x += pixelsPerByte {
			b, err := m.Row(x, y, pixelsPerByte)
			if err != nil {
				return err
			}
			row = append(row, b)
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the Image m to w as a packed 1-bit bitmap. If o is nil then
// the default options are used.
func Encode(w io.Writer, m image.Image, o *Options) error {
	b := m.Bounds()
	if o != nil && o.Strict && b.Dx()%pixelsPerByte != 0 {
		return fmt.Errorf("%w: %d", ErrPartialByte, b.Dx())
	}

	e := encoder{w: w}

	return e.encode(bitpack.NewMask(m))
}
