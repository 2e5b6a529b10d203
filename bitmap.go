package netpbm

import "strings"

// Bitmap is a 1-bit netpbm image. A false pixel is white, true is black.
type Bitmap struct {
	width, height int
	pixels        [][]bool
}

// NewBitmap returns a width by height bitmap with every pixel set to
// background.
func NewBitmap(width, height int, background bool) *Bitmap {
	pixels := make([][]bool, height)
	for y := range pixels {
		row := make([]bool, width)
		if background {
			for x := range row {
				row[x] = true
			}
		}
		pixels[y] = row
	}
	return &Bitmap{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

func (m *Bitmap) Width() int {
	return m.width
}

func (m *Bitmap) Height() int {
	return m.height
}

// Set sets the pixel at (x, y). Coordinates outside the image are ignored.
func (m *Bitmap) Set(x, y int, value bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pixels[y][x] = value
}

// At returns the pixel at (x, y). The second return value is false for
// coordinates outside the image.
func (m *Bitmap) At(x, y int) (bool, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false, false
	}
	return m.pixels[y][x], true
}

// ToASCII returns the plain form (P1). Pixels are written as unpadded 0 or 1.
func (m *Bitmap) ToASCII(comment string) string {
	var sb strings.Builder
	sb.WriteString(textHeader(magicPlainBitmap, comment, m.width, m.height, 0))
	for y, row := range m.pixels {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ToRaw returns the raw form (P4) with each row bit-packed.
func (m *Bitmap) ToRaw() []byte {
	b := rawHeader(magicRawBitmap, m.width, m.height, 0)
	for _, row := range m.pixels {
		b = append(b, packRow(row)...)
	}
	return b
}
