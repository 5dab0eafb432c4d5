// Package grapheme answers grapheme-cluster questions about short text
// windows.
package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		n++
	}
	return n
}

// First returns the first grapheme cluster of text, or "" when text is
// empty.
func First(text string) string {
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return ""
	}
	return g.Str()
}

// Last returns the last grapheme cluster of text, or "" when text is empty.
func Last(text string) string {
	last := ""
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		last = g.Str()
	}
	return last
}
