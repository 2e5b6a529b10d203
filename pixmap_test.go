package netpbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPixmap() *Pixmap {
	m := NewPixmap(2, 2, 255, [3]uint16{255, 255, 255})
	m.Set(0, 0, [3]uint16{0, 0, 0})
	m.Set(1, 0, [3]uint16{255, 0, 0})
	m.Set(0, 1, [3]uint16{0, 255, 0})
	m.Set(1, 1, [3]uint16{0, 0, 255})
	return m
}

func TestPixmapToASCII(t *testing.T) {
	assert.Equal(t, "P3\n2 2\n255\n  0   0   0 255   0   0\n  0 255   0   0   0 255\n", testPixmap().ToASCII(""))
}

func TestPixmapToRaw(t *testing.T) {
	assert.Equal(t,
		append([]byte("P6\n2 2\n255\n"), 0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0, 255),
		testPixmap().ToRaw())
}

func TestPixmapBounds(t *testing.T) {
	m := testPixmap()
	before := m.ToRaw()

	m.Set(2, 0, [3]uint16{1, 1, 1})
	m.Set(0, 0, [3]uint16{0, 0, 256}) // one channel over maxval

	assert.Equal(t, before, m.ToRaw())

	_, ok := m.At(-1, 0)
	assert.False(t, ok)

	v, ok := m.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, [3]uint16{255, 0, 0}, v)
}

func TestPixmapBackgroundRange(t *testing.T) {
	m := NewPixmap(1, 1, 255, [3]uint16{0, 300, 0})
	v, ok := m.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, [3]uint16{}, v)
}

func TestPixmapRoundTrip(t *testing.T) {
	wide := NewPixmap(2, 1, 65535, [3]uint16{})
	wide.Set(0, 0, [3]uint16{0x1234, 0, 0xffff})
	wide.Set(1, 0, [3]uint16{1, 2, 3})

	for _, m := range []*Pixmap{testPixmap(), wide} {
		for _, b := range [][]byte{m.ToRaw(), []byte(m.ToASCII(""))} {
			d, err := DecodePPM(b)
			require.NoError(t, err)
			assert.Equal(t, m, d)
		}
	}
}
