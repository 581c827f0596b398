package glyphpack

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/bodgit/glyphpack/bitmap"
	"github.com/bodgit/glyphpack/bitpack"
	"github.com/bodgit/glyphpack/charset"
	"github.com/bodgit/glyphpack/tileset"
)

// Format identifies one of the packed output formats.
type Format int

const (
	// FormatBitmap is a plain packed bitmap, see package bitmap
	FormatBitmap Format = iota + 1
	// FormatCharset is a fixed 256 character set, see package charset
	FormatCharset
	// FormatTileset is a deduplicated character set, see package tileset
	FormatTileset
)

var formatNames = map[Format]string{
	FormatBitmap:  "bitmap",
	FormatCharset: "charset",
	FormatTileset: "tileset",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format with the given name.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("glyphpack: unknown format \"%s\"", s)
}

// DefaultGrid returns the default cell grid for f.
func (f Format) DefaultGrid() bitpack.Grid {
	switch f {
	case FormatCharset:
		return charset.DefaultGrid()
	case FormatTileset:
		return tileset.DefaultGrid()
	default:
		return bitpack.Grid{}
	}
}

// Options selects a format along with its parameters.
type Options struct {
	Format Format
	// Grid is the cell geometry for the charset and tileset formats
	Grid bitpack.Grid
	// Strict rejects bitmap images whose width is not a multiple of 8
	Strict bool
	// Width is the source image width, needed to decode a bitmap
	Width int
}

// Encoder returns the EncodeFunc for the selected format.
func (o Options) Encoder() (EncodeFunc, error) {
	switch o.Format {
	case FormatBitmap:
		opts := &bitmap.Options{Strict: o.Strict}
		return func(w io.Writer, m image.Image) error {
			return bitmap.Encode(w, m, opts)
		}, nil
	case FormatCharset:
		return func(w io.Writer, m image.Image) error {
			return charset.Encode(w, m, o.Grid)
		}, nil
	case FormatTileset:
		return func(w io.Writer, m image.Image) error {
			return tileset.Encode(w, m, o.Grid)
		}, nil
	default:
		return nil, fmt.Errorf("glyphpack: unsupported format %s", o.Format)
	}
}

// Decode reads data in the selected format from r and renders it as an
// image.
func (o Options) Decode(r io.Reader) (image.Image, error) {
	switch o.Format {
	case FormatBitmap:
		return bitmap.Decode(r, o.Width)
	case FormatCharset:
		return charset.Decode(r, o.Grid)
	case FormatTileset:
		ts, err := tileset.Decode(r)
		if err != nil {
			return nil, err
		}
		return ts.Image(o.Grid)
	default:
		return nil, fmt.Errorf("glyphpack: unsupported format %s", o.Format)
	}
}
