package charset

import (
	"errors"
	"image"
	"io"

	"github.com/bodgit/glyphpack/bitpack"
)

var (
	errNotEnough = errors.New("charset: not enough data")
	errTooMuch   = errors.New("charset: too much data")
	errBadGrid   = errors.New("charset: cell must be between 1x1 and 8x8")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	tiles [bitpack.Cells]bitpack.Tile
	tmp   [Size]byte
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	for c := range d.tiles {
		copy(d.tiles[c][:], d.tmp[c*recordSize:])
	}

	return nil
}

// ReadTiles reads an encoded character set from r and returns the 8 byte
// record for each character.
func ReadTiles(r io.Reader) ([bitpack.Cells]bitpack.Tile, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return [bitpack.Cells]bitpack.Tile{}, err
	}
	return d.tiles, nil
}

// Decode reads an encoded character set from r and renders it back into a
// grid of cells using g.
func Decode(r io.Reader, g bitpack.Grid) (image.Image, error) {
	if g.Width < 1 || g.Width > bitpack.TileSize || g.Height < 1 || g.Height > bitpack.TileSize {
		return nil, errBadGrid
	}

	tiles, err := ReadTiles(r)
	if err != nil {
		return nil, err
	}

	m := image.NewPaletted(g.Bounds(), Palette)
	for c, t := range tiles {
		drawTile(m, g.Origin(c), t, g.Width, g.Height)
	}

	return m, nil
}
