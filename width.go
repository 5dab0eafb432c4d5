package strview

import (
	"github.com/mattn/go-runewidth"

	"github.com/IoaNNUwU/string-view/internal/grapheme"
)

// Width returns the terminal display width of the current window in cells.
func (v View) Width() int { return runewidth.StringWidth(v.String()) }

// Width returns the terminal display width of the current window in cells.
func (v MutView) Width() int { return runewidth.StringWidth(v.String()) }

// GraphemeCount returns the number of grapheme clusters in the window.
// Cursor operations move by scalar values; this reports what a reader
// perceives as characters.
func (v View) GraphemeCount() int { return grapheme.Count(v.String()) }

// GraphemeCount returns the number of grapheme clusters in the window.
func (v MutView) GraphemeCount() int { return grapheme.Count(v.String()) }
