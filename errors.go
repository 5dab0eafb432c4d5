package strview

import "errors"

// Window errors
var (
	// ErrBaseTooShort indicates that an exact-count extend asked for more
	// characters than remain between the window edge and the buffer bound,
	// or that a part-constructor received an out-of-range offset.
	ErrBaseTooShort = errors.New("base buffer holds fewer characters than requested")

	// ErrViewTooShort indicates that an exact-count reduce asked for more
	// characters than the window currently holds.
	ErrViewTooShort = errors.New("window holds fewer characters than requested")

	// ErrInvalidBoundary indicates a byte offset that does not fall on a
	// UTF-8 encoding boundary.
	ErrInvalidBoundary = errors.New("offset is not on a character boundary")
)

// Rewrite errors
var (
	// ErrLengthMismatch indicates that a replacement encoding does not fit
	// the byte span it must occupy exactly. Nothing is written.
	ErrLengthMismatch = errors.New("replacement encoding has a different byte length")

	// ErrInvalidUTF8 indicates bytes that are not valid UTF-8, or a rune
	// that has no UTF-8 encoding.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")
)
