package charset

import (
	"image"
	"io"

	"github.com/bodgit/glyphpack/bitpack"
	"github.com/noxer/bytewriter"
)

type encoder struct {
	w io.Writer
	g bitpack.Grid
}

func (e *encoder) encode(m *bitpack.Mask) error {
	var buf [Size]byte
	bw := bytewriter.New(buf[:])

	for c := 0; c < bitpack.Cells; c++ {
		o := e.g.Origin(c)
		t, err := m.Tile(o.X, o.Y, e.g.Width, e.g.Height)
		if err != nil {
			return err
		}
		if _, err := bw.Write(t[:]); err != nil {
			return err
		}
	}

	_, err := e.w.Write(buf[:])
	return err
}

// Encode writes the character grid in m to w. The grid is validated before
// anything is written.
func Encode(w io.Writer, m image.Image, g bitpack.Grid) error {
	mask := bitpack.NewMask(m)
	if err := validate(mask, g); err != nil {
		return err
	}

	e := encoder{w: w, g: g}

	return e.encode(mask)
}
