package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean", in: "hello world", want: "hello world"},
		{name: "keeps tabs", in: "a\tb", want: "a\tb"},
		{name: "drops newlines", in: "a\nb", want: "ab"},
		{name: "drops escape codes", in: "a\x1b[31mb", want: "a[31mb"},
		{name: "drops invalid utf8", in: "a\xffb", want: "ab"},
		{name: "nbsp becomes space", in: "a\u00a0b", want: "a b"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "short", width: 10, want: "short"},
		{name: "exact", in: "exactly10!", width: 10, want: "exactly10!"},
		{name: "truncated", in: "this is too long", width: 10, want: "this is..."},
		{name: "wide runes", in: "日本語のテキスト", width: 8, want: "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := runewidth.StringWidth(got); w > tt.width {
				t.Errorf("result is %d columns wide, exceeds %d", w, tt.width)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
	}{
		{name: "padded", in: "abc", width: 10},
		{name: "truncated", in: "a long string that will not fit", width: 12},
		{name: "wide runes padded", in: "日本", width: 10},
		{name: "empty", in: "", width: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateAndPad(tt.in, tt.width)
			if w := runewidth.StringWidth(got); w != tt.width {
				t.Errorf("TruncateAndPad(%q, %d) is %d columns wide", tt.in, tt.width, w)
			}
		})
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if got != "left           right" {
		t.Errorf("Row = %q", got)
	}
	if len(got) != 20 {
		t.Errorf("row is %d columns, want 20", len(got))
	}

	// Oversized content still keeps a single space gap.
	got = Row("0123456789", "abcdefghij", 10)
	if got != "0123456789 abcdefghij" {
		t.Errorf("overflowing Row = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	got := Separator(5)
	if got != strings.Repeat("─", 5) {
		t.Errorf("Separator(5) = %q", got)
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(4); got != "    " {
		t.Errorf("EmptyLine(4) = %q", got)
	}
}
