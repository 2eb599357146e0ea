package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/ui/textutil"
)

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Composite draws fg over bg with its top-left corner at (x, y). The result
// is exactly height lines of width columns. Everything of bg not covered by
// fg is stripped of its styling and rendered with dim.
func Composite(bg, fg string, x, y, width, height int, dim lipgloss.Style) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	x = max(0, x)

	out := make([]string, height)
	for i := range out {
		plain := ""
		if i < len(bgLines) {
			plain = ansi.Strip(bgLines[i])
		}
		plain = textutil.Fit(plain, width)

		j := i - y
		if j < 0 || j >= len(fgLines) {
			out[i] = dimmed(dim, plain)
			continue
		}
		fl := fgLines[j]
		fw := ansi.StringWidth(fl)
		if x+fw > width {
			fl = ansi.Truncate(fl, width-x, "")
			fw = width - x
		}
		left := ansi.Truncate(plain, x, "")
		right := ansi.TruncateLeft(plain, x+fw, "")
		out[i] = dimmed(dim, left) + fl + dimmed(dim, right)
	}
	return strings.Join(out, "\n")
}

func dimmed(dim lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return dim.Render(s)
}

// ClipLines returns at most height lines of s, padding with empty lines when
// s is shorter.
func ClipLines(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
