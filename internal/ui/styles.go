package ui

import "github.com/charmbracelet/lipgloss"

// Theme names a color palette. The chosen theme is the one persisted
// preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored string to a Theme, defaulting to dark.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Palette holds the ANSI-256 colors for a theme.
type Palette struct {
	Accent    string // titles, highlights
	Highlight string // selected items, borders
	Muted     string // dimmed text, hints
	Text      string // normal text
	Dim       string // backdrop behind overlays
	Badge     string // tech badge background
}

var palettes = map[Theme]Palette{
	ThemeDark: {
		Accent:    "86",
		Highlight: "205",
		Muted:     "241",
		Text:      "252",
		Dim:       "238",
		Badge:     "237",
	},
	ThemeLight: {
		Accent:    "25",
		Highlight: "161",
		Muted:     "245",
		Text:      "235",
		Dim:       "250",
		Badge:     "254",
	},
}

// PaletteFor returns the palette of t.
func PaletteFor(t Theme) Palette {
	return palettes[ParseTheme(string(t))]
}

// Styles contains shared style definitions used across views and the modal.
// Views hold a *Styles so a theme switch restyles everything at once.
type Styles struct {
	Title    lipgloss.Style // bold accent, for headings
	Category lipgloss.Style // accent, card and modal category line
	Section  lipgloss.Style // section headers
	Rule     lipgloss.Style // underline below section headers

	Card         lipgloss.Style // card box
	CardSelected lipgloss.Style // card box under the cursor
	Cover        lipgloss.Style // image preview area on cards
	Placeholder  lipgloss.Style // "No Image"

	Modal     lipgloss.Style // inline modal box
	Frame     lipgloss.Style // carousel image frame
	Close     lipgloss.Style // close button
	DotActive lipgloss.Style
	DotIdle   lipgloss.Style
	Badge     lipgloss.Style
	Bullet    lipgloss.Style

	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style
	Backdrop lipgloss.Style // dimmed page behind an overlay
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	p := PaletteFor(t)
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Text)),
		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Muted)).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Highlight)).
			Padding(0, 1),
		Cover: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Badge)),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Background(lipgloss.Color(p.Badge)).
			Italic(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Highlight)).
			Padding(0, 1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.Muted)),
		Close: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Highlight)),
		DotActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)),
		DotIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),
		Bullet: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Italic(true),
		Backdrop: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Dim)),
	}
}
