package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{4, 2, true},
		{5, 1, false},
		{2, 3, false},
		{1, 1, false},
		{2, 0, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestComposite(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	fg := "XX\nYY"
	got := Composite(bg, fg, 2, 1, 6, 4, lipgloss.NewStyle())
	want := "aaaaaa\nbbXXbb\nccYYcc\n      "
	assert.Equal(t, want, got)
}

func TestComposite_ClipsAtRightEdge(t *testing.T) {
	got := Composite("......", "XXXX", 4, 0, 6, 1, lipgloss.NewStyle())
	assert.Equal(t, "....XX", got)
}

func TestClipLines(t *testing.T) {
	assert.Equal(t, "a\nb", ClipLines("a\nb\nc", 2))
	assert.Equal(t, "a\n\n", ClipLines("a", 3))
	assert.Equal(t, "", ClipLines("a", 0))
	assert.Len(t, strings.Split(ClipLines("", 5), "\n"), 5)
}
