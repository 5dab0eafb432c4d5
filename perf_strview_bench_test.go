package strview

import (
	"strings"
	"testing"
	"unicode"
)

var benchAlphabet = strings.Repeat("abcdefghijklmnopqrstuvwxyz", 52)

var benchPadded = strings.Repeat(" ", 400) + "Hello" + strings.Repeat(" ", 400)

func BenchmarkIterate(b *testing.B) {
	b.Run("range_string", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for range benchAlphabet {
			}
		}
	})

	b.Run("chars_of", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			it := CharsOf(benchAlphabet)
			for {
				if _, ok := it.Next(); !ok {
					break
				}
			}
		}
	})

	b.Run("chars_in_place", func(b *testing.B) {
		buf := []byte(benchAlphabet)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			it, _ := CharsInPlace(buf)
			for {
				if _, ok := it.Next(); !ok {
					break
				}
			}
		}
	})
}

func BenchmarkReplaceEvery(b *testing.B) {
	b.Run("strings_map", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = strings.Map(func(r rune) rune { return 'z' - (r - 'a') }, benchAlphabet)
		}
	})

	b.Run("in_place", func(b *testing.B) {
		buf := []byte(benchAlphabet)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			it, _ := CharsInPlace(buf)
			for {
				ch, ok := it.Next()
				if !ok {
					break
				}
				_ = ch.Replace('z' - (ch.Rune() - 'a'))
			}
		}
	})
}

func BenchmarkTrimFill(b *testing.B) {
	b.Run("trim_func_repeat", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			inner := strings.TrimFunc(benchPadded, unicode.IsSpace)
			_ = strings.Repeat("*", len(inner))
		}
	})

	b.Run("trim_matches_fill", func(b *testing.B) {
		buf := []byte(benchPadded)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			inner := TrimMatches(buf, unicode.IsSpace)
			_ = inner.Fill('*')
		}
	})
}
