package glyphpack

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"

	"github.com/KononK/resize"
	"github.com/bodgit/glyphpack/tileset"
	"github.com/gocarina/gocsv"
)

// Preview decodes the packed file src and writes it to dst as a PNG, scaled
// up by an integer factor.
func (p *Packer) Preview(src, dst string, o Options, scale int) error {
	if scale < 1 {
		return errors.New("glyphpack: scale must be at least 1")
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := o.Decode(f)
	if err != nil {
		return err
	}

	b := m.Bounds()
	if scale > 1 {
		m = resize.Resize(uint(b.Dx()*scale), uint(b.Dy()*scale), m, resize.NearestNeighbor)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, m); err != nil {
		return err
	}

	if err := writeFile(dst, buf.Bytes()); err != nil {
		return err
	}

	p.logger.Printf("Rendered \"%s\" (%s %dx%d) to \"%s\" at %dx\n", src, o.Format, b.Dx(), b.Dy(), dst, scale)

	return nil
}

// Inspect decodes the deduplicated character set in src and writes the tile
// references for each character to w as CSV.
func (p *Packer) Inspect(src string, w io.Writer) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	ts, err := tileset.Decode(f)
	if err != nil {
		return err
	}

	records := ts.Records()
	if err := gocsv.Marshal(&records, w); err != nil {
		return err
	}

	p.logger.Printf("\"%s\" has %d unique tiles for %d tile slots\n", src, ts.Len(), tileset.Slots)

	return nil
}
