package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/catalog"
)

// Grid spacing in cells.
const (
	GridGap    = 2 // columns between cards
	GridRowGap = 1 // blank lines between rows
)

// GridView lays out one card per project in as many columns as fit.
type GridView struct {
	Projects []*catalog.Project
	Cursor   int
	Styles   *Styles

	// OnSelect builds the message sent when a card is activated.
	// Defaults to SelectProjectMsg.
	OnSelect func(*catalog.Project) tea.Msg

	width int
}

// Ensure GridView implements View.
var _ View = (*GridView)(nil)

// NewGridView creates a grid over projects. The slice is borrowed.
func NewGridView(projects []*catalog.Project, st *Styles) *GridView {
	return &GridView{
		Projects: projects,
		Styles:   st,
		OnSelect: func(p *catalog.Project) tea.Msg { return SelectProjectMsg{Project: p} },
	}
}

// SetWidth sets the columns available to the grid.
func (g *GridView) SetWidth(w int) {
	g.width = w
}

// Columns returns how many cards fit side by side (at least one).
func (g *GridView) Columns() int {
	return max(1, (g.width+GridGap)/(CardWidth+GridGap))
}

// Rows returns the number of card rows.
func (g *GridView) Rows() int {
	cols := g.Columns()
	return (len(g.Projects) + cols - 1) / cols
}

// Height returns the rendered height in lines.
func (g *GridView) Height() int {
	rows := g.Rows()
	if rows == 0 {
		return 1
	}
	return rows*CardHeight + (rows-1)*GridRowGap
}

// CellRect returns the grid-relative rectangle of card i.
func (g *GridView) CellRect(i int) Rect {
	cols := g.Columns()
	return Rect{
		X: (i % cols) * (CardWidth + GridGap),
		Y: (i / cols) * (CardHeight + GridRowGap),
		W: CardWidth,
		H: CardHeight,
	}
}

// IndexAt returns the card under grid-relative cell (x, y), or -1 for the
// gaps and the space past the last card.
func (g *GridView) IndexAt(x, y int) int {
	if x < 0 || y < 0 {
		return -1
	}
	cols := g.Columns()
	col, cx := x/(CardWidth+GridGap), x%(CardWidth+GridGap)
	row, cy := y/(CardHeight+GridRowGap), y%(CardHeight+GridRowGap)
	if col >= cols || cx >= CardWidth || cy >= CardHeight {
		return -1
	}
	i := row*cols + col
	if i >= len(g.Projects) {
		return -1
	}
	return i
}

// Activate moves the cursor to card i and returns a command carrying the
// selection message. Out-of-range indexes return nil.
func (g *GridView) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(g.Projects) || g.OnSelect == nil {
		return nil
	}
	g.Cursor = i
	p := g.Projects[i]
	onSelect := g.OnSelect
	return func() tea.Msg { return onSelect(p) }
}

// Click activates the card under grid-relative cell (x, y), if any.
func (g *GridView) Click(x, y int) tea.Cmd {
	return g.Activate(g.IndexAt(x, y))
}

// Init implements View.
func (g *GridView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (g *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Projects) == 0 {
		return g, nil
	}
	cols := g.Columns()
	last := len(g.Projects) - 1
	switch km.String() {
	case "left", "h":
		if g.Cursor%cols > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor%cols < cols-1 && g.Cursor < last {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-cols >= 0 {
			g.Cursor -= cols
		}
	case "down", "j":
		switch {
		case g.Cursor+cols <= last:
			g.Cursor += cols
		case g.Cursor/cols < last/cols:
			g.Cursor = last
		}
	case "g", "home":
		g.Cursor = 0
	case "G", "end":
		g.Cursor = last
	case "enter":
		return g, g.Activate(g.Cursor)
	}
	return g, nil
}

// View implements View.
func (g *GridView) View() string {
	if len(g.Projects) == 0 {
		return g.Styles.Empty.Render("No projects yet.")
	}
	cols := g.Columns()
	gap := strings.Repeat(" ", GridGap)
	var rows []string
	for start := 0; start < len(g.Projects); start += cols {
		end := min(start+cols, len(g.Projects))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, RenderCard(g.Projects[i], i == g.Cursor, g.Styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, strings.Repeat("\n", GridRowGap+1))
}
