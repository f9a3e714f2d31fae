package path

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"/", Path{}},
		{"/a", Path{Ident("a")}},
		{"/a/b/c", Path{Ident("a"), Ident("b"), Ident("c")}},
		{"/a[0]", Path{Ident("a"), Index(0)}},
		{"/a[0]/b/c[1]", Path{Ident("a"), Index(0), Ident("b"), Ident("c"), Index(1)}},
		{"/a[-1]", Path{Ident("a"), Index(-1)}},
		{"/a[+2]", Path{Ident("a"), Index(2)}},
		{"/a[0][1]", Path{Ident("a"), Index(0), Index(1)}},
		{"/[3]", Path{Index(3)}},
		{"/[3]/x", Path{Index(3), Ident("x")}},
		{"/snake_case/kebab-case/0", Path{Ident("snake_case"), Ident("kebab-case"), Ident("0")}},
		{"/'a.b c'", Path{Ident("a.b c")}},
		{`/'it\'s'[2]`, Path{Ident("it's"), Index(2)}},
		{`/'back\\slash'`, Path{Ident(`back\slash`)}},
		{"/''", Path{Ident("")}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		err    error
		offset int
	}{
		{"", ErrEmpty, 0},
		{"a", ErrNoRoot, 0},
		{"//", ErrUnexpected, 1},
		{"/a/", ErrTrailing, 2},
		{"/a[", ErrUnterminated, 2},
		{"/a[]", ErrBadIndex, 3},
		{"/a[-]", ErrBadIndex, 4},
		{"/a[x]", ErrBadIndex, 3},
		{"/a[1x]", ErrUnexpected, 4},
		{"/a.b", ErrUnexpected, 2},
		{"/a b", ErrUnexpected, 2},
		{"/'abc", ErrUnterminated, 1},
		{`/'a\b'`, ErrUnexpected, 3},
		{"/a[99999999999999999999]", ErrBadIndex, 3},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.in)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Path != tt.in {
				t.Errorf("expected path %q, got %q", tt.in, pe.Path)
			}
			if pe.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, pe.Offset)
			}
			if msg := err.Error(); strings.Contains(msg, "\n") {
				t.Errorf("multi-line message %q", msg)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("/abcdefgh/ij kl")
	want := "path parse error: unexpected character: `...gh/ij kl...` at offset 12 in \"/abcdefgh/ij kl\""
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	MustParse("")
}
