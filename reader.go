package netpbm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errBadMagic          = errors.New("netpbm: unrecognized magic token")
	errMissingDimensions = errors.New("netpbm: missing image dimensions")
	errMissingMaxval     = errors.New("netpbm: missing maxval")
	errTruncated         = errors.New("netpbm: truncated payload")
)

// decoder walks a byte stream that starts as loosely line-structured header
// text and ends as payload. Header consumption is line based because raw
// payload bytes may legitimately contain newlines; once the header has been
// consumed the remainder of the stream is handed over verbatim.
type decoder struct {
	b   []byte
	off int
}

// magic matches the first two bytes against the plain/raw magic pair for a
// format and reports which variant was found.
func (d *decoder) magic(plain, raw string) (bool, error) {
	if len(d.b) < 2 {
		return false, errBadMagic
	}
	d.off = 2
	switch string(d.b[:2]) {
	case plain:
		return true, nil
	case raw:
		return false, nil
	}
	return false, errBadMagic
}

// line consumes up to and including the next newline and returns the bytes
// before it. The second return value is false once the stream is exhausted.
func (d *decoder) line() (string, bool) {
	if d.off >= len(d.b) {
		return "", false
	}
	start := d.off
	for d.off < len(d.b) && d.b[d.off] != '\n' {
		d.off++
	}
	line := string(d.b[start:d.off])
	if d.off < len(d.b) {
		d.off++
	}
	return line, true
}

func (d *decoder) rest() []byte {
	return d.b[d.off:]
}

// dimensions consumes header lines until it has collected two non-negative
// integers, taken as width then height. Lines yielding no parseable integer,
// such as comments, are skipped.
func (d *decoder) dimensions() (int, int, error) {
	var dims []int
	for len(dims) < 2 {
		line, ok := d.line()
		if !ok {
			return 0, 0, errMissingDimensions
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil || n < 0 {
				continue
			}
			dims = append(dims, n)
			if len(dims) == 2 {
				break
			}
		}
	}
	return dims[0], dims[1], nil
}

// maxval consumes the next header line as the maxval integer.
func (d *decoder) maxval() (uint16, error) {
	line, ok := d.line()
	if !ok {
		return 0, errMissingMaxval
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n <= 0 || n > 65535 {
		return 0, fmt.Errorf("netpbm: invalid maxval %q", line)
	}
	return uint16(n), nil
}

// tokens whitespace-tokenizes the remaining bytes as plain-form samples and
// yields each one to f until the expected count has been consumed. Tokens
// that fail integer parsing or fall outside [0, max] are skipped without
// claiming a slot.
func (d *decoder) tokens(count, max int, f func(i, v int)) error {
	i := 0
	for _, tok := range strings.Fields(string(d.rest())) {
		if i == count {
			break
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 || v > max {
			continue
		}
		f(i, v)
		i++
	}
	if i < count {
		return errTruncated
	}
	return nil
}

// DecodePBM decodes a bitmap from either of its wire forms (P1 or P4).
func DecodePBM(b []byte) (*Bitmap, error) {
	d := decoder{b: b}

	plain, err := d.magic(magicPlainBitmap, magicRawBitmap)
	if err != nil {
		return nil, err
	}

	width, height, err := d.dimensions()
	if err != nil {
		return nil, err
	}

	m := NewBitmap(width, height, false)

	if plain {
		if err := d.tokens(width*height, 1, func(i, v int) {
			m.pixels[i/width][i%width] = v != 0
		}); err != nil {
			return nil, err
		}
		return m, nil
	}

	// Raw rows are bit-packed with each row starting a fresh byte.
	rowBytes := (width + 7) >> 3
	payload := d.rest()
	if len(payload) < rowBytes*height {
		return nil, errTruncated
	}
	for y := 0; y < height; y++ {
		row := payload[y*rowBytes:]
		for x := 0; x < width; x++ {
			m.pixels[y][x] = row[x>>3]&(1<<uint(7-x&7)) != 0
		}
	}

	return m, nil
}

// DecodePGM decodes a graymap from either of its wire forms (P2 or P5).
func DecodePGM(b []byte) (*Graymap, error) {
	d := decoder{b: b}

	plain, err := d.magic(magicPlainGraymap, magicRawGraymap)
	if err != nil {
		return nil, err
	}

	width, height, err := d.dimensions()
	if err != nil {
		return nil, err
	}

	maxval, err := d.maxval()
	if err != nil {
		return nil, err
	}

	m := NewGraymap(width, height, maxval, 0)

	if plain {
		if err := d.tokens(width*height, int(maxval), func(i, v int) {
			m.pixels[i/width][i%width] = uint16(v)
		}); err != nil {
			return nil, err
		}
		return m, nil
	}

	samples, err := d.samples(width*height, maxval)
	if err != nil {
		return nil, err
	}
	for i, v := range samples {
		m.pixels[i/width][i%width] = v
	}

	return m, nil
}

// DecodePPM decodes a pixmap from either of its wire forms (P3 or P6).
func DecodePPM(b []byte) (*Pixmap, error) {
	d := decoder{b: b}

	plain, err := d.magic(magicPlainPixmap, magicRawPixmap)
	if err != nil {
		return nil, err
	}

	width, height, err := d.dimensions()
	if err != nil {
		return nil, err
	}

	maxval, err := d.maxval()
	if err != nil {
		return nil, err
	}

	m := NewPixmap(width, height, maxval, [3]uint16{})

	if plain {
		if err := d.tokens(width*height*3, int(maxval), func(i, v int) {
			m.pixels[i/3/width][i/3%width][i%3] = uint16(v)
		}); err != nil {
			return nil, err
		}
		return m, nil
	}

	samples, err := d.samples(width*height*3, maxval)
	if err != nil {
		return nil, err
	}
	for i, v := range samples {
		m.pixels[i/3/width][i/3%width][i%3] = v
	}

	return m, nil
}

// samples decodes count raw samples from the remaining payload, merging
// big-endian byte pairs when maxval calls for two-byte samples.
func (d *decoder) samples(count int, maxval uint16) ([]uint16, error) {
	payload := d.rest()
	out := make([]uint16, count)
	if wide(maxval) {
		if len(payload) < 2*count {
			return nil, errTruncated
		}
		for i := range out {
			out[i] = uint16(payload[2*i])<<8 | uint16(payload[2*i+1])
		}
		return out, nil
	}
	if len(payload) < count {
		return nil, errTruncated
	}
	for i := range out {
		out[i] = uint16(payload[i])
	}
	return out, nil
}

// Load reads any supported netpbm file and selects the decoder from the
// magic token. The arbitrary map has no decoder; P7 files are rejected.
func Load(path string) (Image, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if len(b) < 2 {
		return nil, errBadMagic
	}
	switch string(b[:2]) {
	case magicPlainBitmap, magicRawBitmap:
		return DecodePBM(b)
	case magicPlainGraymap, magicRawGraymap:
		return DecodePGM(b)
	case magicPlainPixmap, magicRawPixmap:
		return DecodePPM(b)
	}
	return nil, errBadMagic
}
