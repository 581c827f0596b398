package glyphpack_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/glyphpack"
	"github.com/bodgit/glyphpack/bitmap"
	"github.com/bodgit/glyphpack/bitpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPacker() *glyphpack.Packer {
	return glyphpack.New(log.New(io.Discard, "", 0))
}

func solid(w, h int, c color.Color) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func encoder(t *testing.T, o glyphpack.Options) glyphpack.EncodeFunc {
	fn, err := o.Encoder()
	require.NoError(t, err)
	return fn
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		options glyphpack.Options
		width   int
		height  int
		size    int
	}{
		{"bitmap", glyphpack.Options{Format: glyphpack.FormatBitmap}, 320, 200, 8000},
		{"bitmap truncated", glyphpack.Options{Format: glyphpack.FormatBitmap}, 12, 5, 5},
		{"charset", glyphpack.Options{Format: glyphpack.FormatCharset, Grid: glyphpack.FormatCharset.DefaultGrid()}, 128, 48, 2048},
		{"tileset", glyphpack.Options{Format: glyphpack.FormatTileset, Grid: glyphpack.FormatTileset.DefaultGrid()}, 192, 80, 1026 + 16},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			src, dst := filepath.Join(dir, "in.png"), filepath.Join(dir, "out.bin")
			writePNG(t, src, solid(test.width, test.height, color.White))

			require.NoError(t, newPacker().Convert(src, dst, encoder(t, test.options)))

			b, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, test.size, len(b))
		})
	}
}

func TestConvertCharsetSolid(t *testing.T) {
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "font.png"), filepath.Join(dir, "font.bin")
	writePNG(t, src, solid(128, 48, color.White))

	o := glyphpack.Options{Format: glyphpack.FormatCharset, Grid: glyphpack.FormatCharset.DefaultGrid()}
	require.NoError(t, newPacker().Convert(src, dst, encoder(t, o)))

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0x00, 0x00}, 256), b)
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0644))

	small := filepath.Join(dir, "small.png")
	writePNG(t, small, solid(100, 40, color.White))

	charset := encoder(t, glyphpack.Options{Format: glyphpack.FormatCharset, Grid: glyphpack.FormatCharset.DefaultGrid()})
	strict := encoder(t, glyphpack.Options{Format: glyphpack.FormatBitmap, Strict: true})

	tests := []struct {
		name string
		src  string
		fn   glyphpack.EncodeFunc
		err  error
	}{
		{"missing", filepath.Join(dir, "missing.png"), charset, glyphpack.ErrDecode},
		{"garbage", garbage, charset, glyphpack.ErrDecode},
		{"out of bounds", small, charset, bitpack.ErrOutOfBounds},
		{"strict", small, strict, bitmap.ErrPartialByte},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst := filepath.Join(dir, test.name+".bin")
			err := newPacker().Convert(test.src, dst, test.fn)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.err), err.Error())

			_, err = os.Stat(dst)
			assert.True(t, os.IsNotExist(err), "no output should be written")
		})
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0755))

	writePNG(t, filepath.Join(dir, "a.png"), solid(16, 2, color.White))
	writePNG(t, filepath.Join(dir, "sub", "b.PNG"), solid(8, 3, color.Black))
	writePNG(t, filepath.Join(dir, ".hidden", "c.png"), solid(8, 1, color.White))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))

	fn := encoder(t, glyphpack.Options{Format: glyphpack.FormatBitmap})
	require.NoError(t, newPacker().Scan(dir, ".1bp", fn))

	b, err := os.ReadFile(filepath.Join(dir, "a.1bp"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, b)

	b, err = os.ReadFile(filepath.Join(dir, "sub", "b.1bp"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00}, b)

	_, err = os.Stat(filepath.Join(dir, ".hidden", "c.1bp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "notes.1bp"))
	assert.True(t, os.IsNotExist(err))
}

func TestScanError(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "small.png"), solid(8, 8, color.White))

	fn := encoder(t, glyphpack.Options{Format: glyphpack.FormatTileset, Grid: glyphpack.FormatTileset.DefaultGrid()})
	err := newPacker().Scan(dir, ".bin", fn)
	assert.True(t, errors.Is(err, bitpack.ErrOutOfBounds))
}

func TestScanOverwriteSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.png")
	writePNG(t, src, solid(16, 2, color.White))

	before, err := os.ReadFile(src)
	require.NoError(t, err)

	fn := encoder(t, glyphpack.Options{Format: glyphpack.FormatBitmap})
	for _, suffix := range []string{".png", ".PNG", ".gif"} {
		err := newPacker().Scan(dir, suffix, fn)
		assert.True(t, errors.Is(err, glyphpack.ErrOverwriteSource), suffix)
	}

	after, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestScanDuplicateOutput(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "font.png"), solid(16, 2, color.White))

	f, err := os.Create(filepath.Join(dir, "font.gif"))
	require.NoError(t, err)
	require.NoError(t, gif.Encode(f, solid(16, 2, color.White), nil))
	require.NoError(t, f.Close())

	fn := encoder(t, glyphpack.Options{Format: glyphpack.FormatBitmap})
	err = newPacker().Scan(dir, ".bin", fn)
	assert.True(t, errors.Is(err, glyphpack.ErrDuplicateOutput))
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	src, packed, dst := filepath.Join(dir, "font.png"), filepath.Join(dir, "font.bin"), filepath.Join(dir, "preview.png")

	m := solid(192, 80, color.Black)
	m.Set(0, 0, color.White)
	writePNG(t, src, m)

	o := glyphpack.Options{Format: glyphpack.FormatTileset, Grid: glyphpack.FormatTileset.DefaultGrid()}
	p := newPacker()
	require.NoError(t, p.Convert(src, packed, encoder(t, o)))
	require.NoError(t, p.Preview(packed, dst, o, 4))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()

	preview, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 192*4, preview.Bounds().Dx())
	assert.Equal(t, 80*4, preview.Bounds().Dy())
	assert.True(t, bitpack.On(preview.At(2, 2)))
	assert.False(t, bitpack.On(preview.At(6, 6)))

	assert.Error(t, p.Preview(packed, dst, o, 0))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	src, packed := filepath.Join(dir, "font.png"), filepath.Join(dir, "font.bin")
	writePNG(t, src, solid(192, 80, color.White))

	o := glyphpack.Options{Format: glyphpack.FormatTileset, Grid: glyphpack.FormatTileset.DefaultGrid()}
	p := newPacker()
	require.NoError(t, p.Convert(src, packed, encoder(t, o)))

	out := new(bytes.Buffer)
	require.NoError(t, p.Inspect(packed, out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 257)
	assert.Equal(t, "cell,main,remainder,main_tile,remainder_tile", lines[0])
	assert.Equal(t, "0,0,1,fcfcfcfcfcfcfcfc,fcfc000000000000", lines[1])
}

func TestParseFormat(t *testing.T) {
	for _, f := range []glyphpack.Format{glyphpack.FormatBitmap, glyphpack.FormatCharset, glyphpack.FormatTileset} {
		parsed, err := glyphpack.ParseFormat(strings.ToUpper(f.String()))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := glyphpack.ParseFormat("jpeg")
	assert.Error(t, err)

	_, err = glyphpack.Options{}.Encoder()
	assert.Error(t, err)
}
