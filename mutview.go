package strview

import "unicode/utf8"

// MutView is the window over a caller-owned mutable byte buffer.
//
// Cursor movement works exactly as on View; in addition the window can be
// bulk-rewritten in place with Fill, and handed to CharsInPlace via Chars.
// The buffer's byte length is never changed.
//
// A MutView assumes exclusive access to its buffer: no other reader or
// writer may touch the bytes while the MutView (or any Char derived from
// it) is in use. The package does no locking; that discipline is the
// caller's.
//
// The cursor methods mirror View's rather than sharing code with them: the
// two base types cannot share a backing array without a copy, and the
// stdlib draws the same string/[]byte line (strings vs bytes).
type MutView struct {
	base  []byte
	start int
	end   int
}

// NewMut returns a MutView spanning all of buf.
//
// buf must be valid UTF-8; use NewMutPart when the input is untrusted.
func NewMut(buf []byte) MutView {
	return MutView{base: buf, start: 0, end: len(buf)}
}

// NewMutPart returns a MutView of buf[start:end]. Offsets are byte indices
// and must fall on character boundaries.
func NewMutPart(buf []byte, start, end int) (MutView, error) {
	if start < 0 || end < start || end > len(buf) {
		return MutView{}, ErrBaseTooShort
	}
	if !boundaryOK(buf, start) || !boundaryOK(buf, end) {
		return MutView{}, ErrInvalidBoundary
	}
	if !utf8.Valid(buf) {
		return MutView{}, ErrInvalidUTF8
	}
	return MutView{base: buf, start: start, end: end}, nil
}

// Start returns the byte offset of the window start inside the buffer.
func (v MutView) Start() int { return v.start }

// End returns the byte offset just past the window end inside the buffer.
func (v MutView) End() int { return v.end }

// Len returns the window length in bytes.
func (v MutView) Len() int { return v.end - v.start }

// IsEmpty reports whether the window has zero length.
func (v MutView) IsEmpty() bool { return v.start == v.end }

// Bytes returns the current window, aliasing the buffer's storage. Writes
// through the result are writes into the buffer.
func (v MutView) Bytes() []byte { return v.base[v.start:v.end] }

// String returns a copy of the current window for display. Unlike Bytes it
// allocates.
func (v MutView) String() string { return string(v.base[v.start:v.end]) }

// Chars returns a single-pass mutation sequence over the current window.
func (v MutView) Chars() (*CharIter, error) {
	return charsInPlaceAt(v.base[v.start:v.end], v.start)
}

// ShrinkToRight collapses the window to zero length at its right edge.
func (v *MutView) ShrinkToRight() { v.start = v.end }

// ShrinkToLeft collapses the window to zero length at its left edge.
func (v *MutView) ShrinkToLeft() { v.end = v.start }

// ExtendRight grows the window to the right by exactly n characters.
func (v *MutView) ExtendRight(n int) error {
	end := v.end
	for i := 0; i < n; i++ {
		if end >= len(v.base) {
			return ErrBaseTooShort
		}
		_, size := utf8.DecodeRune(v.base[end:])
		end += size
	}
	v.end = end
	return nil
}

// ExtendRightWhile grows the window to the right while pred matches the
// next character outside the window.
func (v *MutView) ExtendRightWhile(pred func(rune) bool) {
	end := v.end
	for end < len(v.base) {
		r, size := utf8.DecodeRune(v.base[end:])
		if !pred(r) {
			break
		}
		end += size
	}
	v.end = end
}

// ExtendLeft grows the window to the left by exactly n characters.
func (v *MutView) ExtendLeft(n int) error {
	start := v.start
	for i := 0; i < n; i++ {
		if start <= 0 {
			return ErrBaseTooShort
		}
		_, size := utf8.DecodeLastRune(v.base[:start])
		start -= size
	}
	v.start = start
	return nil
}

// ExtendLeftWhile grows the window to the left while pred matches the
// character just before the window.
func (v *MutView) ExtendLeftWhile(pred func(rune) bool) {
	start := v.start
	for start > 0 {
		r, size := utf8.DecodeLastRune(v.base[:start])
		if !pred(r) {
			break
		}
		start -= size
	}
	v.start = start
}

// ReduceRight shrinks the window from the right by exactly n characters.
func (v *MutView) ReduceRight(n int) error {
	end := v.end
	for i := 0; i < n; i++ {
		if end <= v.start {
			return ErrViewTooShort
		}
		_, size := utf8.DecodeLastRune(v.base[:end])
		end -= size
	}
	v.end = end
	return nil
}

// ReduceRightWhile shrinks the window from the right while pred matches
// the last character inside it.
func (v *MutView) ReduceRightWhile(pred func(rune) bool) {
	end := v.end
	for end > v.start {
		r, size := utf8.DecodeLastRune(v.base[:end])
		if !pred(r) {
			break
		}
		end -= size
	}
	v.end = end
}

// ReduceLeft shrinks the window from the left by exactly n characters.
func (v *MutView) ReduceLeft(n int) error {
	start := v.start
	for i := 0; i < n; i++ {
		if start >= v.end {
			return ErrViewTooShort
		}
		_, size := utf8.DecodeRune(v.base[start:])
		start += size
	}
	v.start = start
	return nil
}

// ReduceLeftWhile shrinks the window from the left while pred matches the
// first character inside it.
func (v *MutView) ReduceLeftWhile(pred func(rune) bool) {
	start := v.start
	for start < v.end {
		r, size := utf8.DecodeRune(v.base[start:])
		if !pred(r) {
			break
		}
		start += size
	}
	v.start = start
}

// TrimWhile shrinks the window from both edges while pred matches the edge
// character.
func (v *MutView) TrimWhile(pred func(rune) bool) {
	v.ReduceLeftWhile(pred)
	v.ReduceRightWhile(pred)
}

// Fill overwrites every byte of the window with repetitions of r's
// encoding. The window's byte length must be an exact multiple of the
// encoding's length; otherwise ErrLengthMismatch is returned and nothing
// is written. The number of characters in the window may change, its byte
// length never does.
func (v MutView) Fill(r rune) error {
	size := utf8.RuneLen(r)
	if size < 0 {
		return ErrInvalidUTF8
	}
	if v.Len()%size != 0 {
		return ErrLengthMismatch
	}
	for off := v.start; off < v.end; off += size {
		if err := encodeInPlace(v.base[off:off+size], r); err != nil {
			return err
		}
	}
	return nil
}
