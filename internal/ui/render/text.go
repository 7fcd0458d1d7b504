// Package render provides width-aware text helpers for panel views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (tab excepted) and invalid UTF-8 so that
// arbitrary file names and message text cannot corrupt the terminal. A
// non-breaking space becomes a plain space.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError:
			return -1
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate shortens s to fit maxWidth display columns, appending "..." when
// anything was cut. Wide runes count by their display width.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateAndPad returns s at exactly width display columns, truncating or
// space-padding as needed.
func TruncateAndPad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row lays out left- and right-aligned content on one line. The gap is at
// least one space, so the result may exceed width when the parts do not fit.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// EmptyLine returns a blank line of the given width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", width)
}
