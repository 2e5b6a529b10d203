package main

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/netpbm"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/nfnt/resize"
	"github.com/urfave/cli/v2"
)

var errUnknownFormat = errors.New("unknown output format")

func toBitmap(img image.Image) *netpbm.Bitmap {
	b := img.Bounds()
	m := netpbm.NewBitmap(b.Dx(), b.Dy(), false)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			m.Set(x-b.Min.X, y-b.Min.Y, c.Y < 128)
		}
	}
	return m
}

func toGraymap(img image.Image) *netpbm.Graymap {
	b := img.Bounds()
	m := netpbm.NewGraymap(b.Dx(), b.Dy(), 255, 0)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			m.Set(x-b.Min.X, y-b.Min.Y, uint16(c.Y))
		}
	}
	return m
}

func toPixmap(img image.Image) *netpbm.Pixmap {
	b := img.Bounds()
	m := netpbm.NewPixmap(b.Dx(), b.Dy(), 255, [3]uint16{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			m.Set(x-b.Min.X, y-b.Min.Y, [3]uint16{uint16(r >> 8), uint16(g >> 8), uint16(bl >> 8)})
		}
	}
	return m
}

// convertImage maps an image to the netpbm format named by format: "pbm",
// "pgm" or "ppm".
func convertImage(img image.Image, format string) (netpbm.Image, error) {
	switch format {
	case "pbm":
		return toBitmap(img), nil
	case "pgm":
		return toGraymap(img), nil
	case "ppm":
		return toPixmap(img), nil
	}
	return nil, errUnknownFormat
}

func quantizeImage(img image.Image, colors int) image.Image {
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(img.Bounds(), q.Quantize(make(color.Palette, 0, colors), img))
	draw.Draw(pm, pm.Bounds(), img, img.Bounds().Min, draw.Src)
	return pm
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// outputFormat derives the netpbm format from the destination extension,
// looking through a trailing .gz.
func outputFormat(path string) string {
	if strings.HasSuffix(path, ".gz") {
		path = strings.TrimSuffix(path, ".gz")
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

func convertAction(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	src, dst := c.Args().Get(0), c.Args().Get(1)

	img, err := decodeImage(src)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if w, h := c.Int("width"), c.Int("height"); w > 0 || h > 0 {
		img = resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
	}

	if n := c.Int("colors"); n > 0 {
		img = quantizeImage(img, n)
	}

	m, err := convertImage(img, outputFormat(dst))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if c.Bool("plain") {
		err = netpbm.SaveASCII(dst, m, c.String("comment"))
	} else {
		err = netpbm.SaveRaw(dst, m)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}
