package strview

import "unicode/utf8"

// DecodeAt decodes the character whose encoding starts at byte offset off
// in s and returns it together with its encoded length.
//
// ErrInvalidBoundary is returned when off is out of range or points into
// the middle of an encoding; ErrInvalidUTF8 when the bytes at off do not
// form a valid encoding.
func DecodeAt(s string, off int) (rune, int, error) {
	if off < 0 || off >= len(s) || !utf8.RuneStart(s[off]) {
		return 0, 0, ErrInvalidBoundary
	}
	r, size := utf8.DecodeRuneInString(s[off:])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrInvalidUTF8
	}
	return r, size, nil
}

// DecodeEndingAt decodes the character whose encoding ends at byte offset
// off (exclusive) in s. It scans backward at most utf8.UTFMax bytes to find
// the start of the encoding.
func DecodeEndingAt(s string, off int) (rune, int, error) {
	if off <= 0 || off > len(s) {
		return 0, 0, ErrInvalidBoundary
	}
	if off < len(s) && !utf8.RuneStart(s[off]) {
		return 0, 0, ErrInvalidBoundary
	}
	r, size := utf8.DecodeLastRuneInString(s[:off])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrInvalidUTF8
	}
	return r, size, nil
}

// DecodeAtBytes is DecodeAt for byte slices.
func DecodeAtBytes(b []byte, off int) (rune, int, error) {
	if off < 0 || off >= len(b) || !utf8.RuneStart(b[off]) {
		return 0, 0, ErrInvalidBoundary
	}
	r, size := utf8.DecodeRune(b[off:])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrInvalidUTF8
	}
	return r, size, nil
}

// DecodeEndingAtBytes is DecodeEndingAt for byte slices.
func DecodeEndingAtBytes(b []byte, off int) (rune, int, error) {
	if off <= 0 || off > len(b) {
		return 0, 0, ErrInvalidBoundary
	}
	if off < len(b) && !utf8.RuneStart(b[off]) {
		return 0, 0, ErrInvalidBoundary
	}
	r, size := utf8.DecodeLastRune(b[:off])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrInvalidUTF8
	}
	return r, size, nil
}

// boundaryOK reports whether off (already known to be in [0, len]) falls on
// an encoding boundary.
func boundaryOK[T string | []byte](t T, off int) bool {
	return off == len(t) || utf8.RuneStart(t[off])
}

// encodeInPlace writes r's UTF-8 encoding over span. It is the single write
// funnel for every mutation in the package: the new encoding's length is
// computed before any byte is touched, and nothing is written unless it
// equals len(span) exactly.
func encodeInPlace(span []byte, r rune) error {
	size := utf8.RuneLen(r)
	if size < 0 {
		return ErrInvalidUTF8
	}
	if size != len(span) {
		return ErrLengthMismatch
	}
	utf8.EncodeRune(span, r)
	return nil
}
