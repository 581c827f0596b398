package tileset

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"

	"github.com/bodgit/glyphpack/bitpack"
)

type encoder struct {
	ts *Tileset
	g  bitpack.Grid
}

func (e *encoder) add(m *bitpack.Mask, slot, x, y, h int) error {
	t, err := m.Tile(x, y, e.g.Width, h)
	if err != nil {
		return err
	}
	i, err := e.ts.pool.Add(t)
	if err != nil {
		return err
	}
	e.ts.refs[slot] = i
	return nil
}

// Scan order decides the pool indices so cells and their two tiles must be
// visited strictly in order
func (e *encoder) encode(m *bitpack.Mask) error {
	for c := 0; c < bitpack.Cells; c++ {
		o := e.g.Origin(c)
		if err := e.add(m, c*2, o.X, o.Y, mainHeight); err != nil {
			return err
		}
		if err := e.add(m, c*2+1, o.X, o.Y+mainHeight, e.g.Height-mainHeight); err != nil {
			return err
		}
	}
	return nil
}

// New builds the deduplicated character set for the grid in m.
func New(m image.Image, g bitpack.Grid) (*Tileset, error) {
	mask := bitpack.NewMask(m)
	if err := g.Validate(mask, minHeight, maxHeight); err != nil {
		return nil, err
	}

	e := encoder{ts: new(Tileset), g: g}
	if err := e.encode(mask); err != nil {
		return nil, err
	}

	return e.ts, nil
}

// MarshalBinary encodes the character set into binary form and returns the
// result
func (ts *Tileset) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	b.Grow(headerSize + ts.pool.Len()*tileBytes)

	// Write out tile indices
	if err := binary.Write(b, binary.LittleEndian, &ts.refs); err != nil {
		return nil, err
	}

	// Write out the unique tile count, the pool refuses to grow past this
	if err := binary.Write(b, binary.LittleEndian, uint16(ts.pool.Len())); err != nil {
		return nil, err
	}

	// Write out tiles
	for _, t := range ts.pool.tiles {
		if _, err := b.Write(t[:]); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

// Encode writes the deduplicated character set for the grid in m to w.
// Nothing is written if any tile cannot be sampled or the pool overflows.
func Encode(w io.Writer, m image.Image, g bitpack.Grid) error {
	ts, err := New(m, g)
	if err != nil {
		return err
	}

	b, err := ts.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
