package netpbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSkipsCommentLines(t *testing.T) {
	m, err := DecodePGM([]byte("P2\n# made with pnm\n2 2\n255\n1 2 3 4\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, uint16(255), m.Maxval())

	v, ok := m.At(1, 1)
	assert.True(t, ok)
	assert.Equal(t, uint16(4), v)
}

func TestDecodeDimensionsAcrossLines(t *testing.T) {
	m, err := DecodePGM([]byte("P5\n2\n2\n255\n\x01\x02\x03\x04"))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 2, m.Height())
}

func TestDecodeSkipsBadTokens(t *testing.T) {
	m, err := DecodePGM([]byte("P2\n2 2\n255\nx 1 2 -\n3 4\n"))
	require.NoError(t, err)

	expect := []uint16{1, 2, 3, 4}
	for i, want := range expect {
		v, ok := m.At(i%2, i/2)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	for _, b := range [][]byte{nil, []byte("P"), []byte("JUNK")} {
		_, err := DecodePBM(b)
		assert.Equal(t, errBadMagic, err)
	}

	// A valid file for one family is a bad magic for another.
	_, err := DecodePGM(testBitmap().ToRaw())
	assert.Equal(t, errBadMagic, err)
}

func TestDecodeMissingDimensions(t *testing.T) {
	_, err := DecodePBM([]byte("P1\n# only a comment\n"))
	assert.Equal(t, errMissingDimensions, err)
}

func TestDecodeInvalidMaxval(t *testing.T) {
	for _, b := range [][]byte{
		[]byte("P2\n2 2\n"),
		[]byte("P2\n2 2\nfoo\n1 2 3 4\n"),
		[]byte("P2\n2 2\n0\n1 2 3 4\n"),
		[]byte("P2\n2 2\n70000\n1 2 3 4\n"),
	} {
		_, err := DecodePGM(b)
		assert.Error(t, err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	// A truncated payload is an error and never yields a partial image,
	// in either variant.
	for _, b := range [][]byte{
		[]byte("P1\n2 2\n0 1 1\n"),
		[]byte("P2\n2 2\n255\n1 2 3\n"),
		[]byte("P3\n2 1\n255\n1 2 3 4 5\n"),
		[]byte("P5\n2 2\n255\n\x01\x02\x03"),
		append([]byte("P5\n2 2\n65535\n"), make([]byte, 7)...),
		append([]byte("P4\n9 2\n"), 0x00, 0x00, 0x00),
		[]byte("P6\n2 1\n255\n\x01\x02\x03\x04\x05"),
	} {
		switch string(b[:2]) {
		case magicPlainBitmap, magicRawBitmap:
			m, err := DecodePBM(b)
			assert.Equal(t, errTruncated, err)
			assert.Nil(t, m)
		case magicPlainPixmap, magicRawPixmap:
			m, err := DecodePPM(b)
			assert.Equal(t, errTruncated, err)
			assert.Nil(t, m)
		default:
			m, err := DecodePGM(b)
			assert.Equal(t, errTruncated, err)
			assert.Nil(t, m)
		}
	}
}

func TestDecodeSkipsOutOfRangeTokens(t *testing.T) {
	// Negative and over-maxval samples are no more valid than non-numeric
	// ones; they are skipped without claiming a slot so a decoded image
	// never holds a sample above its maxval.
	m, err := DecodePGM([]byte("P2\n2 1\n255\n-3 300 1 2\n"))
	require.NoError(t, err)
	for i, want := range []uint16{1, 2} {
		v, ok := m.At(i, 0)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}

	d, err := DecodePBM([]byte("P1\n2 1\n2 1 0\n"))
	require.NoError(t, err)
	v, ok := d.At(0, 0)
	assert.True(t, ok)
	assert.True(t, v)
	v, ok = d.At(1, 0)
	assert.True(t, ok)
	assert.False(t, v)

	// Only out-of-range samples left means the grid never fills.
	p, err := DecodePGM([]byte("P2\n2 1\n255\n-3 300\n"))
	assert.Equal(t, errTruncated, err)
	assert.Nil(t, p)
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	b := append(testGraymap().ToRaw(), 0xde, 0xad)
	m, err := DecodePGM(b)
	require.NoError(t, err)
	assert.Equal(t, testGraymap(), m)
}

func TestDecodeRawRowsStartFreshBytes(t *testing.T) {
	// 9 pixels per row is two bytes on the wire; the second row must not
	// continue in the first row's final byte.
	m := NewBitmap(9, 2, false)
	m.Set(8, 0, true)
	m.Set(0, 1, true)

	b := m.ToRaw()
	assert.Equal(t, []byte{0x00, 0x80, 0x80, 0x00}, b[len(b)-4:])

	d, err := DecodePBM(b)
	require.NoError(t, err)
	assert.Equal(t, m, d)
}
