package textutil

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"日本語テキスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := VisualWidth(Truncate(tt.in, tt.width)); w > tt.width {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, w)
		}
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("ab", 5); got != "ab   " {
		t.Errorf("got %q", got)
	}
	if got := PadRightVisual("abcdef", 4); got != "abc…" {
		t.Errorf("got %q", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("got %q", got)
	}
	if got := Center("ab", 5); got != " ab  " {
		t.Errorf("odd gap: got %q", got)
	}
	if got := Center("abcdef", 3); got != "ab…" {
		t.Errorf("narrow: got %q", got)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"none", "  ab  ", 0, "  ab  "},
		{"right", "  ab  ", 2, "    ab"},
		{"left", "  ab  ", -2, "ab    "},
		{"left past text", "  ab  ", -3, "b     "},
		{"right past edge", "ab", 10, "      "},
		{"left past end", "ab", -10, "      "},
		{"wide rune straddles", "日本", -1, " 本   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shift(tt.in, tt.n, 6)
			if got != tt.want {
				t.Errorf("Shift(%q, %d, 6) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if VisualWidth(got) != 6 {
				t.Errorf("width = %d, want 6", VisualWidth(got))
			}
		})
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 10)
	if len(lines) < 4 {
		t.Fatalf("expected several lines, got %q", lines)
	}
	for _, l := range lines {
		if VisualWidth(l) > 10 {
			t.Errorf("line %q wider than 10", l)
		}
		if strings.HasSuffix(l, " ") {
			t.Errorf("line %q has trailing space", l)
		}
	}
	if Wrap("   ", 10) != nil {
		t.Error("blank input should produce no lines")
	}
}

func TestFit(t *testing.T) {
	if got := Fit("abcdef", 4); got != "abcd" {
		t.Errorf("cut: got %q", got)
	}
	if got := Fit("ab", 4); got != "ab  " {
		t.Errorf("pad: got %q", got)
	}
	if got := Fit("日本", 3); got != "日 " {
		t.Errorf("wide: got %q", got)
	}
}
