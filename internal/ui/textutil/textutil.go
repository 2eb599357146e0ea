// Package textutil provides unicode-aware text utilities for TUI rendering.
//
// All functions operate on plain (unstyled) text. Style after measuring.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual pads s with spaces to exactly width columns, truncating
// when s is wider.
func PadRightVisual(s string, width int) string {
	w := VisualWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// Center places s in the middle of a width-column field. Extra space goes
// to the right.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Shift moves the content of a width-column line by n columns: right when
// positive, left when negative. Text pushed past either edge is dropped and
// the result is always exactly width columns.
func Shift(s string, n, width int) string {
	switch {
	case n > 0:
		s = strings.Repeat(" ", n) + s
	case n < 0:
		s = skipColumns(s, -n)
	}
	return Fit(s, width)
}

// Fit cuts s hard at width columns (no ellipsis) and pads it to width.
func Fit(s string, width int) string {
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + strings.Repeat(" ", max(0, width-w))
}

// skipColumns drops the first n columns of s. A wide rune straddling the
// cut is replaced by a space.
func skipColumns(s string, n int) string {
	w := 0
	for i, r := range s {
		if w >= n {
			return strings.Repeat(" ", w-n) + s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return strings.Repeat(" ", max(0, w-n))
}

// Wrap word-wraps s to width columns and returns the lines with trailing
// spaces trimmed. Empty input yields no lines.
func Wrap(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" || width <= 0 {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}
