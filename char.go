package strview

import (
	"unicode"
	"unicode/utf8"
)

// Char is a handle to one character's byte span inside a mutable buffer.
//
// It supports reading the character and rewriting it in place, provided the
// new encoding occupies exactly the same number of bytes. A Char is
// ephemeral: it is meant to be used before the CharIter that produced it
// advances, and shares the iterator's exclusive claim on the buffer.
type Char struct {
	span []byte
	off  int
}

// Rune returns the character.
func (c Char) Rune() rune {
	r, _ := utf8.DecodeRune(c.span)
	return r
}

// Size returns the character's encoded length in bytes.
func (c Char) Size() int { return len(c.span) }

// Offset returns the byte offset of the character inside its buffer.
func (c Char) Offset() int { return c.off }

// String returns a copy of the character's encoding.
func (c Char) String() string { return string(c.span) }

// Replace overwrites the character with r in place.
//
// The new encoding must occupy exactly as many bytes as the current one:
// the buffer cannot grow or shrink, and a length-changing write would
// desynchronize every later offset. On ErrLengthMismatch nothing is
// written.
func (c Char) Replace(r rune) error {
	return encodeInPlace(c.span, r)
}

// MakeUpper rewrites the character as its upper-case mapping when that
// mapping encodes to the same number of bytes. Size-changing mappings are
// skipped silently: in a fixed-length buffer the skip is the expected
// outcome for those rare characters, not an error.
func (c Char) MakeUpper() { c.caseMap(unicode.ToUpper) }

// MakeLower rewrites the character as its lower-case mapping, with the
// same silent skip as MakeUpper for size-changing mappings.
func (c Char) MakeLower() { c.caseMap(unicode.ToLower) }

func (c Char) caseMap(m func(rune) rune) {
	_ = encodeInPlace(c.span, m(c.Rune()))
}

// CharIter is a finite, single-pass, left-to-right sequence of Char proxies
// over a mutable buffer, one per character. It tracks only the next byte
// offset and decodes lazily, so it cannot be restarted; create a new one
// per pass.
type CharIter struct {
	buf  []byte
	next int
	base int
}

// CharsInPlace returns a CharIter over all of buf.
//
// The buffer is validated once here (ErrInvalidUTF8); every rewrite through
// the yielded proxies preserves validity, so iteration itself cannot hit a
// decode failure unless the buffer is mutated from outside.
func CharsInPlace(buf []byte) (*CharIter, error) {
	return charsInPlaceAt(buf, 0)
}

func charsInPlaceAt(buf []byte, base int) (*CharIter, error) {
	if !utf8.Valid(buf) {
		return nil, ErrInvalidUTF8
	}
	return &CharIter{buf: buf, base: base}, nil
}

// Next returns a proxy for the character at the current offset and reports
// whether one was available. The advance distance is captured from the
// decode performed here, before the caller can mutate anything, so
// replacing the character through the proxy never perturbs where the next
// one is found.
func (it *CharIter) Next() (Char, bool) {
	if it.next >= len(it.buf) {
		return Char{}, false
	}
	_, size := utf8.DecodeRune(it.buf[it.next:])
	c := Char{span: it.buf[it.next : it.next+size], off: it.base + it.next}
	it.next += size
	return c, true
}

// Chars walks the characters of a string in place, yielding each one as
// the exact single-character substring of s rather than a copy. Next
// consumes from the front, Back from the end; the two cursors meet in the
// middle and never overlap.
type Chars struct {
	s    string
	head int
	tail int
}

// CharsOf returns a Chars walker over all of s.
func CharsOf(s string) *Chars {
	return &Chars{s: s, tail: len(s)}
}

// Next returns the next character from the front as a substring of the
// original string.
func (it *Chars) Next() (string, bool) {
	if it.head >= it.tail {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(it.s[it.head:it.tail])
	ch := it.s[it.head : it.head+size]
	it.head += size
	return ch, true
}

// Back returns the next character from the end as a substring of the
// original string.
func (it *Chars) Back() (string, bool) {
	if it.head >= it.tail {
		return "", false
	}
	_, size := utf8.DecodeLastRuneInString(it.s[it.head:it.tail])
	ch := it.s[it.tail-size : it.tail]
	it.tail -= size
	return ch, true
}
