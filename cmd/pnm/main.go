package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/bodgit/netpbm"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "pnm"
	app.Usage = "netpbm image conversion and inspection utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Print the format and dimensions of a netpbm file",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := netpbm.Load(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				switch m := m.(type) {
				case *netpbm.Bitmap:
					fmt.Printf("bitmap %d x %d\n", m.Width(), m.Height())
				case *netpbm.Graymap:
					fmt.Printf("graymap %d x %d, maxval %d\n", m.Width(), m.Height(), m.Maxval())
				case *netpbm.Pixmap:
					fmt.Printf("pixmap %d x %d, maxval %d\n", m.Width(), m.Height(), m.Maxval())
				}

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert an image to netpbm format",
			Description: "The output format is chosen by the destination extension: .pbm, .pgm or .ppm, optionally followed by .gz.",
			ArgsUsage:   "SOURCE DESTINATION",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Usage: "resize to `WIDTH` pixels, preserving aspect if height is unset",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "resize to `HEIGHT` pixels, preserving aspect if width is unset",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "quantize to at most `N` colors before converting",
				},
				&cli.BoolFlag{
					Name:  "plain",
					Usage: "write the human-readable form instead of the packed one",
				},
				&cli.StringFlag{
					Name:  "comment",
					Usage: "embed a comment in the header (plain form only)",
				},
			},
			Action: convertAction,
		},
		{
			Name:        "scan",
			Usage:       "Convert every image below a directory to netpbm format",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "ppm",
					Usage: "output format, one of pbm, pgm or ppm",
				},
				&cli.BoolFlag{
					Name:  "plain",
					Usage: "write the human-readable form instead of the packed one",
				},
			},
			Action: scanAction,
		},
		{
			Name:        "demo",
			Usage:       "Generate a set of sample images",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action:      demoAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func demoAction(c *cli.Context) error {
	logger := newLogger(c)

	dir := "."
	if c.NArg() > 0 {
		dir = c.Args().First()
	}

	pbm := netpbm.NewBitmap(2, 2, false)
	pbm.Set(0, 0, false)
	pbm.Set(1, 0, true)
	pbm.Set(0, 1, true)
	pbm.Set(1, 1, false)
	if err := netpbm.SaveASCII(filepath.Join(dir, "ascii.pbm"), pbm, ""); err != nil {
		return cli.NewExitError(err, 1)
	}
	if err := netpbm.SaveRaw(filepath.Join(dir, "raw.pbm"), pbm); err != nil {
		return cli.NewExitError(err, 1)
	}

	pgm := netpbm.NewGraymap(4, 2, 255, 255)
	for i, v := range []uint16{0, 32, 64, 96, 128, 160, 192, 232} {
		pgm.Set(i%4, i/4, v)
	}
	if err := netpbm.SaveASCII(filepath.Join(dir, "ascii.pgm"), pgm, ""); err != nil {
		return cli.NewExitError(err, 1)
	}
	if err := netpbm.SaveRaw(filepath.Join(dir, "raw.pgm"), pgm); err != nil {
		return cli.NewExitError(err, 1)
	}

	ppm := netpbm.NewPixmap(4, 2, 255, [3]uint16{255, 255, 255})
	for i, v := range [][3]uint16{
		{0, 0, 0}, {0, 0, 255}, {0, 255, 0}, {0, 255, 255},
		{255, 0, 0}, {255, 0, 255}, {255, 255, 0}, {255, 255, 255},
	} {
		ppm.Set(i%4, i/4, v)
	}
	if err := netpbm.SaveASCII(filepath.Join(dir, "ascii.ppm"), ppm, ""); err != nil {
		return cli.NewExitError(err, 1)
	}
	if err := netpbm.SaveRaw(filepath.Join(dir, "raw.ppm"), ppm); err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := netpbm.SaveRaw(filepath.Join(dir, "big.pam"), colorWheel(512)); err != nil {
		return cli.NewExitError(err, 1)
	}

	// Reload a couple of the files to demonstrate the decode path.
	for _, f := range []string{"ascii.pbm", "raw.pbm"} {
		m, err := netpbm.LoadPBM(filepath.Join(dir, f))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		logger.Printf("reloaded %s: %d x %d\n", f, m.Width(), m.Height())
	}
	for _, f := range []string{"ascii.pgm", "raw.pgm"} {
		m, err := netpbm.LoadPGM(filepath.Join(dir, f))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		logger.Printf("reloaded %s: %d x %d\n", f, m.Width(), m.Height())
	}

	return nil
}

// colorWheel renders an HSV color wheel into a 16-bit RGB arbitrary map:
// hue follows the angle, value falls off with the radius.
func colorWheel(size int) *netpbm.Pam {
	m := netpbm.NewPam(size, size, 65535, netpbm.RGB)

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dx := float64(x - size/2)
			dy := float64(y - size/2)

			r := math.Sqrt(dx*dx + dy*dy)
			theta := math.Atan2(dy, dx)

			hue := (theta + math.Pi) * 180 / math.Pi
			value := 1 - math.Min(r/float64(size), 1)

			chroma := value // saturation is fixed at 1

			huePrime := hue / 60
			x2 := chroma * (1 - math.Abs(math.Mod(huePrime, 2)-1))

			var c [3]float64
			switch {
			case huePrime < 1:
				c = [3]float64{chroma, x2, 0}
			case huePrime < 2:
				c = [3]float64{x2, chroma, 0}
			case huePrime < 3:
				c = [3]float64{0, chroma, x2}
			case huePrime < 4:
				c = [3]float64{0, x2, chroma}
			case huePrime < 5:
				c = [3]float64{x2, 0, chroma}
			default:
				c = [3]float64{chroma, 0, x2}
			}

			o := value - chroma
			m.Set(x, y, []uint16{
				uint16((c[0] + o) * 65535),
				uint16((c[1] + o) * 65535),
				uint16((c[2] + o) * 65535),
			})
		}
	}

	return m
}
