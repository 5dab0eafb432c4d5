package strview

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func TestNewPart_Validation(t *testing.T) {
	const text = "héllo wörld" // é and ö are 2-byte encodings

	cases := []struct {
		name       string
		start, end int
		wantErr    error
	}{
		{name: "whole", start: 0, end: len(text)},
		{name: "empty at start", start: 0, end: 0},
		{name: "empty at end", start: len(text), end: len(text)},
		{name: "word", start: 7, end: len(text)},
		{name: "negative start", start: -1, end: 3, wantErr: ErrBaseTooShort},
		{name: "end before start", start: 4, end: 2, wantErr: ErrBaseTooShort},
		{name: "end past base", start: 0, end: len(text) + 1, wantErr: ErrBaseTooShort},
		{name: "start mid encoding", start: 2, end: 5, wantErr: ErrInvalidBoundary},
		{name: "end mid encoding", start: 0, end: 9, wantErr: ErrInvalidBoundary},
	}

	for _, tc := range cases {
		v, err := NewPart(text, tc.start, tc.end)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: err=%v, want %v", tc.name, err, tc.wantErr)
		}
		if err == nil && (v.Start() != tc.start || v.End() != tc.end) {
			t.Fatalf("%s: window=[%d,%d), want [%d,%d)", tc.name, v.Start(), v.End(), tc.start, tc.end)
		}
	}
}

func TestNewPart_InvalidUTF8(t *testing.T) {
	if _, err := NewPart("ab\xffcd", 0, 2); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err=%v, want ErrInvalidUTF8", err)
	}
}

func TestView_ExtendReduceExact(t *testing.T) {
	text := "Hello World"

	v, err := NewPart(text, 0, 5)
	if err != nil {
		t.Fatalf("NewPart: %v", err)
	}
	if err := v.ExtendRight(6); err != nil {
		t.Fatalf("ExtendRight: %v", err)
	}
	if got := v.String(); got != "Hello World" {
		t.Fatalf("window=%q, want %q", got, "Hello World")
	}

	if err := v.ReduceRight(6); err != nil {
		t.Fatalf("ReduceRight: %v", err)
	}
	if got := v.String(); got != "Hello" {
		t.Fatalf("window=%q, want %q", got, "Hello")
	}

	if err := v.ReduceLeft(2); err != nil {
		t.Fatalf("ReduceLeft: %v", err)
	}
	if got := v.String(); got != "llo" {
		t.Fatalf("window=%q, want %q", got, "llo")
	}

	if err := v.ExtendLeft(2); err != nil {
		t.Fatalf("ExtendLeft: %v", err)
	}
	if got := v.String(); got != "Hello" {
		t.Fatalf("window=%q, want %q", got, "Hello")
	}
}

func TestView_ExtendReduceExact_MultiByte(t *testing.T) {
	text := "日本語 текст"

	v, err := NewPart(text, 0, 0)
	if err != nil {
		t.Fatalf("NewPart: %v", err)
	}
	if err := v.ExtendRight(3); err != nil {
		t.Fatalf("ExtendRight: %v", err)
	}
	if got := v.String(); got != "日本語" {
		t.Fatalf("window=%q, want %q", got, "日本語")
	}

	v = New(text)
	if err := v.ReduceLeft(4); err != nil {
		t.Fatalf("ReduceLeft: %v", err)
	}
	if got := v.String(); got != "текст" {
		t.Fatalf("window=%q, want %q", got, "текст")
	}
	if err := v.ReduceRight(2); err != nil {
		t.Fatalf("ReduceRight: %v", err)
	}
	if got := v.String(); got != "тек" {
		t.Fatalf("window=%q, want %q", got, "тек")
	}
}

func TestView_ExactOps_FailureLeavesWindowUnchanged(t *testing.T) {
	text := "Hello World"

	v, err := NewPart(text, 6, 11)
	if err != nil {
		t.Fatalf("NewPart: %v", err)
	}
	before := v

	if err := v.ExtendRight(1); !errors.Is(err, ErrBaseTooShort) {
		t.Fatalf("ExtendRight past end: err=%v, want ErrBaseTooShort", err)
	}
	if err := v.ExtendLeft(7); !errors.Is(err, ErrBaseTooShort) {
		t.Fatalf("ExtendLeft past start: err=%v, want ErrBaseTooShort", err)
	}
	if err := v.ReduceRight(6); !errors.Is(err, ErrViewTooShort) {
		t.Fatalf("ReduceRight too far: err=%v, want ErrViewTooShort", err)
	}
	if err := v.ReduceLeft(6); !errors.Is(err, ErrViewTooShort) {
		t.Fatalf("ReduceLeft too far: err=%v, want ErrViewTooShort", err)
	}

	if v != before {
		t.Fatalf("window changed by failing ops: %v -> %v", before, v)
	}
}

func TestView_TwoPointerScan(t *testing.T) {
	text := "fn main() {\n    let text = \"Hello World\";\n}\n"

	v, err := NewPart(text, 0, 0)
	if err != nil {
		t.Fatalf("NewPart: %v", err)
	}

	v.ExtendRightWhile(unicode.IsSpace)
	v.ExtendRightWhile(unicode.IsLetter)
	v.ReduceLeftWhile(unicode.IsSpace)

	if got := v.String(); got != "fn" {
		t.Fatalf("first token=%q, want %q", got, "fn")
	}

	// Pin at the right edge and scan the next token.
	v.ShrinkToRight()
	v.ExtendRightWhile(unicode.IsSpace)
	v.ReduceLeftWhile(unicode.IsSpace)
	v.ExtendRightWhile(unicode.IsLetter)

	if got := v.String(); got != "main" {
		t.Fatalf("second token=%q, want %q", got, "main")
	}
}

func TestView_WhileOps_Idempotent(t *testing.T) {
	text := "   aaa   bbb"
	v := New(text)

	v.ReduceLeftWhile(unicode.IsSpace)
	after := v
	v.ReduceLeftWhile(unicode.IsSpace)
	if v != after {
		t.Fatalf("second ReduceLeftWhile changed the window: %v -> %v", after, v)
	}

	v.ExtendLeftWhile(unicode.IsSpace)
	after = v
	v.ExtendLeftWhile(unicode.IsSpace)
	if v != after {
		t.Fatalf("second ExtendLeftWhile changed the window: %v -> %v", after, v)
	}
}

func TestView_ShrinkAnchors(t *testing.T) {
	text := "Hello World"

	v := New(text)
	v.ShrinkToRight()
	if !v.IsEmpty() || v.Start() != len(text) {
		t.Fatalf("after ShrinkToRight: window=[%d,%d), want empty at %d", v.Start(), v.End(), len(text))
	}
	v.ExtendLeftWhile(unicode.IsLetter)
	if got := v.String(); got != "World" {
		t.Fatalf("window=%q, want %q", got, "World")
	}

	v = New(text)
	v.ShrinkToLeft()
	if !v.IsEmpty() || v.End() != 0 {
		t.Fatalf("after ShrinkToLeft: window=[%d,%d), want empty at 0", v.Start(), v.End())
	}
	v.ExtendRightWhile(unicode.IsLetter)
	if got := v.String(); got != "Hello" {
		t.Fatalf("window=%q, want %q", got, "Hello")
	}
}

func TestView_TrimWhile(t *testing.T) {
	text := "  \n   Hello  \n \t  "
	v := New(text)
	v.TrimWhile(unicode.IsSpace)
	if got := v.String(); got != "Hello" {
		t.Fatalf("window=%q, want %q", got, "Hello")
	}

	// All-matching input degenerates to an empty window.
	v = New("   \t\n ")
	v.TrimWhile(unicode.IsSpace)
	if !v.IsEmpty() {
		t.Fatalf("window=%q, want empty", v.String())
	}
}

// Tokens scanned with the two-pointer pattern must agree with an
// independent split of the same text.
func TestView_ScanMatchesFieldsFunc(t *testing.T) {
	texts := []string{
		"one two  three\tfour",
		"  leading and trailing  ",
		"юникод 混ざった text  ",
		"",
		"single",
	}

	for _, text := range texts {
		want := strings.FieldsFunc(text, unicode.IsSpace)

		var got []string
		v := New(text)
		v.ShrinkToLeft()
		for {
			v.ExtendRightWhile(unicode.IsSpace)
			v.ShrinkToRight()
			v.ExtendRightWhile(func(r rune) bool { return !unicode.IsSpace(r) })
			if v.IsEmpty() {
				break
			}
			got = append(got, v.String())
			v.ShrinkToRight()
		}

		if len(got) != len(want) {
			t.Fatalf("%q: got %d tokens %v, want %d %v", text, len(got), got, len(want), want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("%q: token[%d]=%q, want %q", text, i, got[i], want[i])
			}
		}
	}
}

func TestView_ZeroValue(t *testing.T) {
	var v View
	if !v.IsEmpty() || v.String() != "" {
		t.Fatalf("zero View must be an empty window")
	}
	v.ExtendRightWhile(func(rune) bool { return true })
	if !v.IsEmpty() {
		t.Fatalf("zero View must stay empty")
	}
}
