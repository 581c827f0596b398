/*
Package glyphpack converts raster images into the packed 1-bit bitmap and
font formats used by small handheld and retro console frontends.

Three formats are supported; a plain MSB-first bitmap (package bitmap), a
fixed 256 character set of 8 byte records (package charset) and a
deduplicated character set built from pairs of 8 by 8 tiles (package
tileset). Source images may be in any format registered with the image
package, PNG, GIF, JPEG and BMP are registered here.
*/
package glyphpack

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
)

// ErrDecode is returned when the source image cannot be read or decoded
var ErrDecode = errors.New("glyphpack: cannot decode image")

// EncodeFunc writes the packed form of an image.
type EncodeFunc func(io.Writer, image.Image) error

// Packer runs conversions, logging progress to its logger.
type Packer struct {
	logger *log.Logger
}

// New returns a Packer logging to logger.
func New(logger *log.Logger) *Packer {
	return &Packer{
		logger: logger,
	}
}

func decodeImage(file string) (image.Image, string, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	h := sha1.New()
	m, format, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %s: %v", ErrDecode, file, err)
	}

	return m, format, fmt.Sprintf("%X", h.Sum(nil)), nil
}

func writeFile(file string, b []byte) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if _, err = f.Write(b); err != nil {
		f.Close()
		os.Remove(file)
		return err
	}

	return f.Close()
}

// Convert decodes the image in src, packs it with fn and writes the result
// to dst. The output is built in memory first so dst is only created once
// the whole conversion has succeeded.
func (p *Packer) Convert(src, dst string, fn EncodeFunc) error {
	m, format, sha, err := decodeImage(src)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := fn(b, m); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	if err := writeFile(dst, b.Bytes()); err != nil {
		return err
	}

	p.logger.Printf("Packed \"%s\" (%s %dx%d, SHA1 %s) to \"%s\", %d bytes\n", src, format, m.Bounds().Dx(), m.Bounds().Dy(), sha, dst, b.Len())

	return nil
}
