package netpbm

import "fmt"

// TupleType describes the channel layout of an arbitrary map. The zero value
// is not meaningful; use one of the built-in types or CustomTupleType.
type TupleType struct {
	name  string
	depth int
}

// The tuple types defined by the PAM specification.
var (
	BlackAndWhite      = TupleType{"BLACKANDWHITE", 1}
	Grayscale          = TupleType{"GRAYSCALE", 1}
	RGB                = TupleType{"RGB", 3}
	BlackAndWhiteAlpha = TupleType{"BLACKANDWHITE_ALPHA", 2}
	GrayscaleAlpha     = TupleType{"GRAYSCALE_ALPHA", 2}
	RGBAlpha           = TupleType{"RGB_ALPHA", 4}
)

// CustomTupleType returns a tuple type with a caller-chosen layout. The name
// is written to the TUPLTYPE header line verbatim; it should be unique among
// custom types but that is not enforced. A negative depth is treated as
// zero.
func CustomTupleType(name string, depth int) TupleType {
	if depth < 0 {
		depth = 0
	}
	return TupleType{
		name:  name,
		depth: depth,
	}
}

// Depth returns the number of channels per pixel.
func (t TupleType) Depth() int {
	return t.depth
}

func (t TupleType) String() string {
	return t.name
}

// Pam is an arbitrary map: a netpbm container holding any number of channels
// per pixel as described by its tuple type. It has no plain form, so unlike
// the other formats it only satisfies RawImage.
type Pam struct {
	width, height int
	maxval        uint16
	tuple         TupleType
	pixels        [][][]uint16
}

// NewPam returns a width by height arbitrary map with every sample zero.
func NewPam(width, height int, maxval uint16, tuple TupleType) *Pam {
	pixels := make([][][]uint16, height)
	for y := range pixels {
		row := make([][]uint16, width)
		for x := range row {
			row[x] = make([]uint16, tuple.depth)
		}
		pixels[y] = row
	}
	return &Pam{
		width:  width,
		height: height,
		maxval: maxval,
		tuple:  tuple,
		pixels: pixels,
	}
}

func (m *Pam) Width() int {
	return m.width
}

func (m *Pam) Height() int {
	return m.height
}

func (m *Pam) Maxval() uint16 {
	return m.maxval
}

func (m *Pam) TupleType() TupleType {
	return m.tuple
}

// Set sets the tuple at (x, y). Coordinates outside the image, tuples of the
// wrong depth and tuples with any channel greater than maxval are ignored.
func (m *Pam) Set(x, y int, tuple []uint16) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height || len(tuple) != m.tuple.depth {
		return
	}
	for _, v := range tuple {
		if v > m.maxval {
			return
		}
	}
	copy(m.pixels[y][x], tuple)
}

// At returns a copy of the tuple at (x, y). The second return value is false
// for coordinates outside the image.
func (m *Pam) At(x, y int) ([]uint16, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return nil, false
	}
	tuple := make([]uint16, m.tuple.depth)
	copy(tuple, m.pixels[y][x])
	return tuple, true
}

// ToRaw returns the raw form (P7): the verbose header block followed
// directly by the packed samples.
func (m *Pam) ToRaw() []byte {
	b := []byte(fmt.Sprintf("%s\nWIDTH %d\nHEIGHT %d\nDEPTH %d\nMAXVAL %d\nTUPLTYPE %s\nENDHDR\n",
		magicArbitraryMap, m.width, m.height, m.tuple.depth, m.maxval, m.tuple.name))
	w := wide(m.maxval)
	for _, row := range m.pixels {
		for _, tuple := range row {
			for _, v := range tuple {
				b = appendSample(b, v, w)
			}
		}
	}
	return b
}
