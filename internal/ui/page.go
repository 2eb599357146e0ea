package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/scrolllock"
)

// PageMargin is the left margin of the page content in columns.
const PageMargin = 2

// Page is the scrollable document behind the overlays: a header with the
// owner's name and tagline, the "Projects" section holding the grid, and a
// contact footer.
type Page struct {
	Owner   string
	Tagline string
	Contact string
	Styles  *Styles

	vp            viewport.Model
	scrollEnabled bool
	gridTop       int // content line where the grid starts
}

// Ensure Page can be locked.
var _ scrolllock.Target = (*Page)(nil)

// NewPage creates an empty page.
func NewPage(owner, tagline, contact string, st *Styles) *Page {
	vp := viewport.New(80, 24)
	vp.MouseWheelEnabled = false
	return &Page{
		Owner:         owner,
		Tagline:       tagline,
		Contact:       contact,
		Styles:        st,
		vp:            vp,
		scrollEnabled: true,
	}
}

// SetSize resizes the viewport.
func (p *Page) SetSize(w, h int) {
	p.vp.Width = w
	p.vp.Height = max(1, h)
	p.vp.SetYOffset(p.vp.YOffset)
}

// Width returns the viewport width.
func (p *Page) Width() int { return p.vp.Width }

// Height returns the viewport height.
func (p *Page) Height() int { return p.vp.Height }

// ContentWidth is the width available to the grid.
func (p *Page) ContentWidth() int {
	return max(1, p.vp.Width-PageMargin)
}

// SetBody lays out the page around the rendered grid. The scroll offset is
// kept (clamped to the new content).
func (p *Page) SetBody(grid string) {
	st := p.Styles
	margin := strings.Repeat(" ", PageMargin)

	var lines []string
	lines = append(lines,
		margin+st.Title.Render(p.Owner),
		margin+st.Muted.Render(p.Tagline),
		"",
		margin+st.Section.Render("Projects"),
		margin+st.Rule.Render(strings.Repeat("─", len("Projects"))),
		"",
	)
	p.gridTop = len(lines)
	for _, l := range strings.Split(grid, "\n") {
		lines = append(lines, margin+l)
	}
	lines = append(lines, "", margin+st.Section.Render("Contact"))
	if p.Contact != "" {
		lines = append(lines, margin+st.Normal.Render(p.Contact))
	} else {
		lines = append(lines, margin+st.Muted.Render("Get in touch"))
	}
	lines = append(lines, "")

	offset := p.vp.YOffset
	p.vp.SetContent(strings.Join(lines, "\n"))
	p.vp.SetYOffset(offset)
}

// GridTop returns the content line at which the grid starts.
func (p *Page) GridTop() int { return p.gridTop }

// GridPoint converts a screen cell to grid-relative coordinates.
func (p *Page) GridPoint(x, y int) (int, int) {
	return x - PageMargin, y + p.vp.YOffset - p.gridTop
}

// ScrollOffset implements scrolllock.Target.
func (p *Page) ScrollOffset() int { return p.vp.YOffset }

// SetScrollOffset implements scrolllock.Target.
func (p *Page) SetScrollOffset(n int) { p.vp.SetYOffset(n) }

// SetScrollEnabled implements scrolllock.Target.
func (p *Page) SetScrollEnabled(on bool) { p.scrollEnabled = on }

// ScrollEnabled reports whether user scrolling is accepted.
func (p *Page) ScrollEnabled() bool { return p.scrollEnabled }

// ScrollBy moves the viewport by n lines. Ignored while scrolling is locked.
func (p *Page) ScrollBy(n int) {
	if !p.scrollEnabled {
		return
	}
	p.vp.SetYOffset(p.vp.YOffset + n)
}

// EnsureVisible scrolls the least amount needed to show grid-relative lines
// [top, top+h).
func (p *Page) EnsureVisible(top, h int) {
	if !p.scrollEnabled {
		return
	}
	top += p.gridTop
	switch {
	case top < p.vp.YOffset:
		p.vp.SetYOffset(top)
	case top+h > p.vp.YOffset+p.vp.Height:
		p.vp.SetYOffset(top + h - p.vp.Height)
	}
}

// HandleScroll applies page scrolling keys and wheel events. It reports
// whether msg was a scroll input, even when the lock swallowed it.
func (p *Page) HandleScroll(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "pgdown", "ctrl+d", " ":
			p.ScrollBy(max(1, p.vp.Height/2))
		case "pgup", "ctrl+u":
			p.ScrollBy(-max(1, p.vp.Height/2))
		default:
			return false
		}
		return true
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			p.ScrollBy(3)
		case tea.MouseButtonWheelUp:
			p.ScrollBy(-3)
		default:
			return false
		}
		return true
	}
	return false
}

// View renders the visible part of the page.
func (p *Page) View() string {
	return p.vp.View()
}
