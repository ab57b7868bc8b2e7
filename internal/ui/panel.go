package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// DayBar renders how far through the day minute is, with a marker line
// underneath pointing at the current position.
func DayBar(minute, width int) string {
	if width < 5 {
		width = 5
	}
	if minute < 0 {
		minute = 0
	}
	const day = 24 * 60
	if minute > day {
		minute = day
	}
	filled := minute * width / day
	bar := strings.Repeat(current.Filled, filled) + strings.Repeat(current.Empty, width-filled)
	pct := minute * 100 / day
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	// compute visible width
	maxw := 0
	for _, ln := range lines {
		if vw := ansi.StringWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}
