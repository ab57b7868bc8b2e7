package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// fitPane forces s to exactly width columns and height lines (ANSI-aware),
// cutting from the right and the bottom.
func fitPane(s string, width, height int) string {
	width, height = max(width, 0), max(height, 0)
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, ln := range lines {
		if ansi.StringWidth(ln) > width {
			ln = ansi.Cut(ln, 0, width)
		}
		if w := ansi.StringWidth(ln); w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// overlay draws fg over bg with its top-left corner at column x, row y.
// Parts of fg outside bg are clipped.
func overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	bgWidth := 0
	for _, ln := range bgLines {
		bgWidth = max(bgWidth, ansi.StringWidth(ln))
	}

	for i, fl := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		fw := ansi.StringWidth(fl)
		col := x
		if col < 0 {
			fl = ansi.Cut(fl, -col, fw)
			fw += col
			col = 0
		}
		if col+fw > bgWidth {
			fl = ansi.Cut(fl, 0, bgWidth-col)
			fw = bgWidth - col
		}
		if fw <= 0 {
			continue
		}

		base := bgLines[row]
		if w := ansi.StringWidth(base); w < bgWidth {
			base += strings.Repeat(" ", bgWidth-w)
		}
		left := ansi.Cut(base, 0, col)
		if strings.Contains(base, "\x1b[") {
			left += sgrReset
		}
		bgLines[row] = left + fl + ansi.Cut(base, col+fw, bgWidth)
	}
	return strings.Join(bgLines, "\n")
}
