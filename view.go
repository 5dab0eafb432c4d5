package strview

import "unicode/utf8"

// View is a movable window over an immutable base string.
//
// The window is a half-open byte range [Start, End). Both offsets stay on
// encoding boundaries through every operation, and neither ever leaves
// [0, len(base)]. String returns the window as a substring sharing the
// base's storage, so no operation on a View copies text.
//
// The zero View is an empty window over the empty string.
type View struct {
	base  string
	start int
	end   int
}

// New returns a View spanning all of base.
//
// base must be valid UTF-8; a View never re-validates it. Use NewPart when
// the input is untrusted.
func New(base string) View {
	return View{base: base, start: 0, end: len(base)}
}

// NewPart returns a View of base[start:end]. Offsets are byte indices into
// base and must fall on character boundaries.
//
// ErrBaseTooShort is returned for out-of-range offsets, ErrInvalidBoundary
// for offsets inside an encoding, and ErrInvalidUTF8 when base is not valid
// UTF-8.
func NewPart(base string, start, end int) (View, error) {
	if start < 0 || end < start || end > len(base) {
		return View{}, ErrBaseTooShort
	}
	if !boundaryOK(base, start) || !boundaryOK(base, end) {
		return View{}, ErrInvalidBoundary
	}
	if !utf8.ValidString(base) {
		return View{}, ErrInvalidUTF8
	}
	return View{base: base, start: start, end: end}, nil
}

// Start returns the byte offset of the window start inside the base.
func (v View) Start() int { return v.start }

// End returns the byte offset just past the window end inside the base.
func (v View) End() int { return v.end }

// Len returns the window length in bytes.
func (v View) Len() int { return v.end - v.start }

// IsEmpty reports whether the window has zero length.
func (v View) IsEmpty() bool { return v.start == v.end }

// String returns the current window. The result shares the base's storage.
func (v View) String() string { return v.base[v.start:v.end] }

// ShrinkToRight collapses the window to zero length at its right edge,
// keeping the anchor for a fresh scan:
//
//	[ base [ window ]   ]
//	[ base         []   ]
func (v *View) ShrinkToRight() { v.start = v.end }

// ShrinkToLeft collapses the window to zero length at its left edge:
//
//	[ base [ window ]   ]
//	[ base []           ]
func (v *View) ShrinkToLeft() { v.end = v.start }

// ExtendRight grows the window to the right by exactly n characters.
// ErrBaseTooShort is returned, with the window unchanged, when fewer than n
// characters remain between the window and the end of the base.
func (v *View) ExtendRight(n int) error {
	end := v.end
	for i := 0; i < n; i++ {
		if end >= len(v.base) {
			return ErrBaseTooShort
		}
		_, size := utf8.DecodeRuneInString(v.base[end:])
		end += size
	}
	v.end = end
	return nil
}

// ExtendRightWhile grows the window to the right while pred matches the
// next character outside the window, stopping at the end of the base.
// Matching zero characters is a no-op, not an error.
func (v *View) ExtendRightWhile(pred func(rune) bool) {
	end := v.end
	for end < len(v.base) {
		r, size := utf8.DecodeRuneInString(v.base[end:])
		if !pred(r) {
			break
		}
		end += size
	}
	v.end = end
}

// ExtendLeft grows the window to the left by exactly n characters.
// ErrBaseTooShort is returned, with the window unchanged, when fewer than n
// characters precede the window.
func (v *View) ExtendLeft(n int) error {
	start := v.start
	for i := 0; i < n; i++ {
		if start <= 0 {
			return ErrBaseTooShort
		}
		_, size := utf8.DecodeLastRuneInString(v.base[:start])
		start -= size
	}
	v.start = start
	return nil
}

// ExtendLeftWhile grows the window to the left while pred matches the
// character just before the window, stopping at the start of the base.
func (v *View) ExtendLeftWhile(pred func(rune) bool) {
	start := v.start
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(v.base[:start])
		if !pred(r) {
			break
		}
		start -= size
	}
	v.start = start
}

// ReduceRight shrinks the window from the right by exactly n characters.
// ErrViewTooShort is returned, with the window unchanged, when the window
// holds fewer than n characters.
func (v *View) ReduceRight(n int) error {
	end := v.end
	for i := 0; i < n; i++ {
		if end <= v.start {
			return ErrViewTooShort
		}
		_, size := utf8.DecodeLastRuneInString(v.base[:end])
		end -= size
	}
	v.end = end
	return nil
}

// ReduceRightWhile shrinks the window from the right while pred matches the
// last character inside it. It never crosses the left edge.
func (v *View) ReduceRightWhile(pred func(rune) bool) {
	end := v.end
	for end > v.start {
		r, size := utf8.DecodeLastRuneInString(v.base[:end])
		if !pred(r) {
			break
		}
		end -= size
	}
	v.end = end
}

// ReduceLeft shrinks the window from the left by exactly n characters.
// ErrViewTooShort is returned, with the window unchanged, when the window
// holds fewer than n characters.
func (v *View) ReduceLeft(n int) error {
	start := v.start
	for i := 0; i < n; i++ {
		if start >= v.end {
			return ErrViewTooShort
		}
		_, size := utf8.DecodeRuneInString(v.base[start:])
		start += size
	}
	v.start = start
	return nil
}

// ReduceLeftWhile shrinks the window from the left while pred matches the
// first character inside it. It never crosses the right edge.
func (v *View) ReduceLeftWhile(pred func(rune) bool) {
	start := v.start
	for start < v.end {
		r, size := utf8.DecodeRuneInString(v.base[start:])
		if !pred(r) {
			break
		}
		start += size
	}
	v.start = start
}

// TrimWhile shrinks the window from both edges while pred matches the edge
// character.
func (v *View) TrimWhile(pred func(rune) bool) {
	v.ReduceLeftWhile(pred)
	v.ReduceRightWhile(pred)
}
