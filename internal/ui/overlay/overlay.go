// Package overlay composites a popup on top of a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws overlay on top of base. Each overlay line replaces the base
// columns it visibly covers; leading and trailing blank columns keep the base
// content. Both inputs may carry ANSI styling.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// Visible extent of the overlay line, in display columns.
		startCol := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plain, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// Center pads content so that Compose places it in the middle of a
// width by height area.
func Center(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	topPad := max((height-len(lines))/2, 0)

	var sb strings.Builder
	for range topPad {
		sb.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		leftPad := max((width-ansi.StringWidth(ansi.Strip(line)))/2, 0)
		sb.WriteString(strings.Repeat(" ", leftPad))
		sb.WriteString(line)
	}
	return sb.String()
}
