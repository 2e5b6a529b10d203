package netpbm

// The sample codec assumes the image invariants already hold; all range
// checking happens at mutation time, never here.

// digits returns the decimal width of v, which is the field width used to
// align plain-form samples.
func digits(v int) int {
	n := 1
	for v > 9 {
		v /= 10
		n++
	}
	return n
}

// wide reports whether samples bound by maxval need two bytes on the wire.
func wide(maxval uint16) bool {
	return maxval > 255
}

// packRow packs a row of bitmap pixels into bytes, most significant bit
// first, so bit 7 holds the first pixel of each group of eight. Every row
// starts a fresh byte and any unused low bits of the final byte stay zero.
func packRow(row []bool) []byte {
	out := make([]byte, (len(row)+7)>>3)
	for i, v := range row {
		if v {
			out[i>>3] |= 1 << uint(7-i&7)
		}
	}
	return out
}

// appendSample appends the raw form of a single sample: two bytes big-endian
// when wide, otherwise the low byte.
func appendSample(b []byte, v uint16, wide bool) []byte {
	if wide {
		return append(b, byte(v>>8), byte(v))
	}
	return append(b, byte(v))
}
