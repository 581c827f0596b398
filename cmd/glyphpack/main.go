package main

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/glyphpack"
	"github.com/bodgit/glyphpack/bitpack"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newPacker(c *cli.Context) *glyphpack.Packer {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return glyphpack.New(logger)
}

func gridFlags(g bitpack.Grid) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Value: g.Width,
			Usage: "character cell width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: g.Height,
			Usage: "character cell height in pixels",
		},
	}
}

// options builds the format options from the command flags, any cell size
// not given falls back to the format default
func options(c *cli.Context, f glyphpack.Format) glyphpack.Options {
	g := f.DefaultGrid()
	if c.IsSet("width") {
		g.Width = c.Int("width")
	}
	if c.IsSet("height") {
		g.Height = c.Int("height")
	}
	return glyphpack.Options{
		Format: f,
		Grid:   g,
		Strict: c.Bool("strict"),
		Width:  c.Int("image-width"),
	}
}

func parseFormat(c *cli.Context) (glyphpack.Format, error) {
	f, err := glyphpack.ParseFormat(c.String("format"))
	if err != nil {
		return 0, cli.Exit(err, 1)
	}
	return f, nil
}

func convert(f glyphpack.Format) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() < 2 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		fn, err := options(c, f).Encoder()
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := newPacker(c).Convert(c.Args().Get(0), c.Args().Get(1), fn); err != nil {
			return cli.Exit(err, 1)
		}

		return nil
	}
}

func strictFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "strict",
		Usage: "fail if the image width is not a multiple of 8 instead of dropping the extra pixels",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "format",
		Aliases:  []string{"f"},
		Usage:    "packed format, one of bitmap, charset or tileset",
		Required: true,
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "glyphpack"
	app.Usage = "Pack images into 1-bit bitmap and font formats"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"GLYPHPACK_VERBOSE"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "bitmap",
			Usage:       "Pack an image into a plain 1-bit bitmap",
			Description: "Each row is packed 8 pixels to a byte, most significant bit first.",
			ArgsUsage:   "SOURCE DESTINATION",
			Flags:       []cli.Flag{strictFlag()},
			Action:      convert(glyphpack.FormatBitmap),
		},
		{
			Name:        "charset",
			Usage:       "Pack a 32x8 character grid into 256 8-byte records",
			Description: "Cells must be no larger than 8x8 pixels.",
			ArgsUsage:   "SOURCE DESTINATION",
			Flags:       gridFlags(glyphpack.FormatCharset.DefaultGrid()),
			Action:      convert(glyphpack.FormatCharset),
		},
		{
			Name:        "tileset",
			Usage:       "Pack a 32x8 character grid into a deduplicated set of 8x8 tiles",
			Description: "Cells must be between 9 and 16 pixels tall and are split into two tiles.",
			ArgsUsage:   "SOURCE DESTINATION",
			Flags:       gridFlags(glyphpack.FormatTileset.DefaultGrid()),
			Action:      convert(glyphpack.FormatTileset),
		},
		{
			Name:        "batch",
			Usage:       "Pack every image found under a directory",
			Description: "Each output is written next to its source image.",
			ArgsUsage:   "DIRECTORY",
			Flags: append(gridFlags(bitpack.Grid{}),
				formatFlag(),
				strictFlag(),
				&cli.StringFlag{
					Name:  "suffix",
					Value: ".bin",
					Usage: "replacement file extension for packed output",
				},
			),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := parseFormat(c)
				if err != nil {
					return err
				}

				fn, err := options(c, f).Encoder()
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := newPacker(c).Scan(c.Args().First(), c.String("suffix"), fn); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "inspect",
			Usage:       "Print the tile references of a packed tileset as CSV",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := newPacker(c).Inspect(c.Args().First(), os.Stdout); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render packed output back to a PNG image",
			Description: "The geometry flags must match those used to pack the file.",
			ArgsUsage:   "FILE DESTINATION",
			Flags: append(gridFlags(bitpack.Grid{}),
				formatFlag(),
				&cli.IntFlag{
					Name:  "image-width",
					Usage: "width of the source image, needed for the bitmap format",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 4,
					Usage: "integer scale factor",
				},
			),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := parseFormat(c)
				if err != nil {
					return err
				}

				if err := newPacker(c).Preview(c.Args().Get(0), c.Args().Get(1), options(c, f), c.Int("scale")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
