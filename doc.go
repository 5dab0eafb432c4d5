// Package strview implements movable, boundary-safe windows over
// caller-owned text buffers, and in-place per-character rewriting that never
// changes a buffer's byte length.
//
// A window is a half-open byte range [Start, End) whose offsets always fall
// on UTF-8 encoding boundaries. View borrows a string read-only; MutView
// borrows a []byte for in-place rewriting. Neither ever allocates a new
// buffer: extending, reducing and rewriting only move offsets or overwrite
// bytes of exactly the same width.
//
// Classification predicates (whitespace, letters, digits, ...) are supplied
// by the caller as func(rune) bool; unicode.IsSpace and friends slot in
// directly.
package strview
