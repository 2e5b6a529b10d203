/*
Package netpbm implements encoders and decoders for the netpbm family of
image formats.

The family consists of the bitmap (PBM), graymap (PGM) and pixmap (PPM)
formats plus the extensible arbitrary map (PAM) container. Each of the first
three exists in two encodings selected by the magic token: a human-readable
"plain" form where every sample is a whitespace-separated ASCII integer, and
a packed "raw" form where bitmap rows are packed eight pixels to a byte and
graymap/pixmap samples occupy one byte, or two bytes big-endian when the
maxval exceeds 255. The arbitrary map is raw only and carries a verbose
multi-line header ending in ENDHDR.

Images are fully materialized in memory; there is no streaming or partial
decode.
*/
package netpbm

import (
	"fmt"
	"strings"
)

const (
	magicPlainBitmap  = "P1"
	magicPlainGraymap = "P2"
	magicPlainPixmap  = "P3"
	magicRawBitmap    = "P4"
	magicRawGraymap   = "P5"
	magicRawPixmap    = "P6"
	magicArbitraryMap = "P7"
)

// RawImage is any image that can encode itself in the packed binary form.
type RawImage interface {
	ToRaw() []byte
}

// Image is any image supporting both wire encodings. The arbitrary map only
// satisfies RawImage as the plain form is undefined for it.
type Image interface {
	RawImage

	// ToASCII returns the plain form. A non-empty comment is embedded in
	// the header with every line prefixed by "# ".
	ToASCII(comment string) string
}

// textHeader assembles the plain-form header. A maxval of zero omits the
// maxval line, which is how the bitmap format is written.
func textHeader(magic, comment string, width, height, maxval int) string {
	var sb strings.Builder
	sb.WriteString(magic)
	if comment != "" {
		sb.WriteString("\n# ")
		sb.WriteString(strings.ReplaceAll(comment, "\n", "\n# "))
	}
	fmt.Fprintf(&sb, "\n%d %d\n", width, height)
	if maxval > 0 {
		fmt.Fprintf(&sb, "%d\n", maxval)
	}
	return sb.String()
}

func rawHeader(magic string, width, height, maxval int) []byte {
	if maxval > 0 {
		return []byte(fmt.Sprintf("%s\n%d %d\n%d\n", magic, width, height, maxval))
	}
	return []byte(fmt.Sprintf("%s\n%d %d\n", magic, width, height))
}
