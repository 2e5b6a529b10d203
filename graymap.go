package netpbm

import (
	"fmt"
	"strings"
)

// Graymap is a single-channel netpbm image with samples in [0, maxval].
type Graymap struct {
	width, height int
	maxval        uint16
	pixels        [][]uint16
}

// NewGraymap returns a width by height graymap with every pixel set to
// background. Samples range from 0 (black) to maxval (white); a background
// greater than maxval is ignored, the same as Set, leaving the image black.
func NewGraymap(width, height int, maxval, background uint16) *Graymap {
	if background > maxval {
		background = 0
	}
	pixels := make([][]uint16, height)
	for y := range pixels {
		row := make([]uint16, width)
		for x := range row {
			row[x] = background
		}
		pixels[y] = row
	}
	return &Graymap{
		width:  width,
		height: height,
		maxval: maxval,
		pixels: pixels,
	}
}

func (m *Graymap) Width() int {
	return m.width
}

func (m *Graymap) Height() int {
	return m.height
}

func (m *Graymap) Maxval() uint16 {
	return m.maxval
}

// Set sets the sample at (x, y). Coordinates outside the image or values
// greater than maxval are ignored.
func (m *Graymap) Set(x, y int, value uint16) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height || value > m.maxval {
		return
	}
	m.pixels[y][x] = value
}

// At returns the sample at (x, y). The second return value is false for
// coordinates outside the image.
func (m *Graymap) At(x, y int) (uint16, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, false
	}
	return m.pixels[y][x], true
}

// ToASCII returns the plain form (P2). Every sample is right-aligned to the
// decimal width of maxval so the rows line up.
func (m *Graymap) ToASCII(comment string) string {
	var sb strings.Builder
	sb.WriteString(textHeader(magicPlainGraymap, comment, m.width, m.height, int(m.maxval)))
	field := digits(int(m.maxval))
	for y, row := range m.pixels {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", field, v)
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ToRaw returns the raw form (P5). Samples are one byte each, or two bytes
// big-endian when maxval exceeds 255.
func (m *Graymap) ToRaw() []byte {
	b := rawHeader(magicRawGraymap, m.width, m.height, int(m.maxval))
	w := wide(m.maxval)
	for _, row := range m.pixels {
		for _, v := range row {
			b = appendSample(b, v, w)
		}
	}
	return b
}
