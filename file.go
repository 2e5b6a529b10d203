package netpbm

import (
	"bytes"
	"io/ioutil"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// SaveASCII writes the plain form of m to path in a single write. Paths
// ending in .gz are gzip-compressed.
func SaveASCII(path string, m Image, comment string) error {
	return writeFile(path, []byte(m.ToASCII(comment)))
}

// SaveRaw writes the raw form of m to path in a single write. Paths ending
// in .gz are gzip-compressed.
func SaveRaw(path string, m RawImage) error {
	return writeFile(path, m.ToRaw())
}

// LoadPBM reads and decodes a bitmap file.
func LoadPBM(path string) (*Bitmap, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePBM(b)
}

// LoadPGM reads and decodes a graymap file.
func LoadPGM(path string) (*Graymap, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePGM(b)
}

// LoadPPM reads and decodes a pixmap file.
func LoadPPM(path string) (*Pixmap, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePPM(b)
}

func writeFile(path string, b []byte) error {
	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(b); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		b = buf.Bytes()
	}
	return ioutil.WriteFile(path, b, 0644)
}

// readFile reads the whole file, decompressing it first if it carries the
// gzip magic, so compressed images load regardless of their extension.
func readFile(path string) ([]byte, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(b) > 1 && b[0] == 0x1f && b[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return ioutil.ReadAll(zr)
	}
	return b, nil
}
