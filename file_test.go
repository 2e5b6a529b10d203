package netpbm

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "netpbm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "test.ppm")
	require.NoError(t, SaveRaw(path, testPixmap()))

	m, err := LoadPPM(path)
	require.NoError(t, err)
	assert.Equal(t, testPixmap(), m)
}

func TestSaveLoadASCII(t *testing.T) {
	dir, err := ioutil.TempDir("", "netpbm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "test.pgm")
	require.NoError(t, SaveASCII(path, testGraymap(), "a comment"))

	m, err := LoadPGM(path)
	require.NoError(t, err)
	assert.Equal(t, testGraymap(), m)
}

func TestSaveLoadGzip(t *testing.T) {
	dir, err := ioutil.TempDir("", "netpbm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "test.pbm.gz")
	require.NoError(t, SaveRaw(path, testBitmap()))

	// The file on disk is gzip, not netpbm.
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(b) > 1)
	assert.Equal(t, []byte{0x1f, 0x8b}, b[:2])

	m, err := LoadPBM(path)
	require.NoError(t, err)
	assert.Equal(t, testBitmap(), m)
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "netpbm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	for file, m := range map[string]RawImage{
		"test.pbm": testBitmap(),
		"test.pgm": testGraymap(),
		"test.ppm": testPixmap(),
	} {
		path := filepath.Join(dir, file)
		require.NoError(t, SaveRaw(path, m))

		d, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, m, d)
	}

	_, err = Load(filepath.Join(dir, "missing.pbm"))
	assert.Error(t, err)

	// The arbitrary map has no decoder.
	path := filepath.Join(dir, "test.pam")
	require.NoError(t, SaveRaw(path, NewPam(1, 1, 255, RGB)))
	_, err = Load(path)
	assert.Equal(t, errBadMagic, err)
}
