package strview

// TrimMatches scans buf from the start while pred matches and independently
// from the end while pred matches, and returns the untouched interior as a
// MutView. The two scans cannot cross: when every character matches, the
// interior degenerates to an empty window. The matched edges themselves are
// left as they are in the buffer.
//
// The usual follow-up is a bulk rewrite of the interior:
//
//	inner := strview.TrimMatches(buf, unicode.IsSpace)
//	err := inner.Fill('*')
func TrimMatches(buf []byte, pred func(rune) bool) MutView {
	v := NewMut(buf)
	v.ReduceLeftWhile(pred)
	v.ReduceRightWhile(pred)
	return v
}
