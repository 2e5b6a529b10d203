package netpbm

import (
	"fmt"
	"strings"
)

// Pixmap is a three-channel netpbm image with red, green and blue samples in
// [0, maxval].
type Pixmap struct {
	width, height int
	maxval        uint16
	pixels        [][][3]uint16
}

// NewPixmap returns a width by height pixmap with every pixel set to
// background, in RGB order. A background with any channel greater than
// maxval is ignored, the same as Set, leaving the image black.
func NewPixmap(width, height int, maxval uint16, background [3]uint16) *Pixmap {
	for _, v := range background {
		if v > maxval {
			background = [3]uint16{}
			break
		}
	}
	pixels := make([][][3]uint16, height)
	for y := range pixels {
		row := make([][3]uint16, width)
		for x := range row {
			row[x] = background
		}
		pixels[y] = row
	}
	return &Pixmap{
		width:  width,
		height: height,
		maxval: maxval,
		pixels: pixels,
	}
}

func (m *Pixmap) Width() int {
	return m.width
}

func (m *Pixmap) Height() int {
	return m.height
}

func (m *Pixmap) Maxval() uint16 {
	return m.maxval
}

// Set sets the color at (x, y), in RGB order. Coordinates outside the image
// or colors with any channel greater than maxval are ignored.
func (m *Pixmap) Set(x, y int, color [3]uint16) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	for _, v := range color {
		if v > m.maxval {
			return
		}
	}
	m.pixels[y][x] = color
}

// At returns the color at (x, y), in RGB order. The second return value is
// false for coordinates outside the image.
func (m *Pixmap) At(x, y int) ([3]uint16, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return [3]uint16{}, false
	}
	return m.pixels[y][x], true
}

// ToASCII returns the plain form (P3) with three aligned fields per pixel.
func (m *Pixmap) ToASCII(comment string) string {
	var sb strings.Builder
	sb.WriteString(textHeader(magicPlainPixmap, comment, m.width, m.height, int(m.maxval)))
	field := digits(int(m.maxval))
	for y, row := range m.pixels {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d %*d %*d", field, c[0], field, c[1], field, c[2])
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ToRaw returns the raw form (P6). Channels are one byte each, or two bytes
// big-endian when maxval exceeds 255.
func (m *Pixmap) ToRaw() []byte {
	b := rawHeader(magicRawPixmap, m.width, m.height, int(m.maxval))
	w := wide(m.maxval)
	for _, row := range m.pixels {
		for _, c := range row {
			for _, v := range c {
				b = appendSample(b, v, w)
			}
		}
	}
	return b
}
