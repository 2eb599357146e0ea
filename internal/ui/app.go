package ui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/catalog"
	"folio/internal/prefs"
	"folio/internal/scrolllock"
	"folio/internal/telemetry"
)

// AppOptions configures NewAppModel.
type AppOptions struct {
	Catalog *catalog.Catalog
	Theme   Theme
	Prefs   *prefs.Store      // nil = theme changes are not persisted
	Tracer  *telemetry.Tracer // nil = no session spans

	Owner   string
	Tagline string
	Contact string

	DragThreshold int // pixels; 0 = carousel default
	CellWidth     int // pixels per column; 0 = 8
}

// AppModel is the root model: the scrollable page with the project grid,
// and the overlay stack holding the project modal while one is open.
type AppModel struct {
	Catalog    *catalog.Catalog
	Grid       *GridView
	Page       *Page
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Styles     *Styles
	Theme      Theme
	Prefs      *prefs.Store
	Tracer     *telemetry.Tracer
	Lock       *scrolllock.Lock
	ShowHelp   bool

	DragThreshold int
	CellWidth     int

	ctx           context.Context
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts AppOptions) *AppModel {
	st := NewStyles(opts.Theme)
	page := NewPage(opts.Owner, opts.Tagline, opts.Contact, &st)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDesc("t", func() tea.Msg { return ToggleThemeMsg{} }, "theme")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "help")

	a := &AppModel{
		Catalog:       opts.Catalog,
		Grid:          NewGridView(opts.Catalog.All(), &st),
		Page:          page,
		KeyHandler:    NewKeyHandler(reg),
		Styles:        &st,
		Theme:         ParseTheme(string(opts.Theme)),
		Prefs:         opts.Prefs,
		Tracer:        opts.Tracer,
		Lock:          scrolllock.New(page),
		ShowHelp:      true,
		DragThreshold: opts.DragThreshold,
		CellWidth:     opts.CellWidth,
		ctx:           context.Background(),
		width:         defaultScreenW,
		height:        defaultScreenH,
	}
	a.relayout()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode reports what currently owns the screen.
func (m *AppModel) Mode() AppMode {
	modal := m.Modal()
	switch {
	case modal == nil:
		return ModeGrid
	case modal.Enlarged():
		return ModeEnlarged
	default:
		return ModeModal
	}
}

// Modal returns the open project modal, or nil.
func (m *AppModel) Modal() *ProjectModal {
	top, ok := m.Overlays.Peek()
	if !ok {
		return nil
	}
	modal, _ := top.View.(*ProjectModal)
	return modal
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.Page.Owner == "" {
		return nil
	}
	return tea.SetWindowTitle(a.Page.Owner)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.relayout()
		return a, nil
	case SelectProjectMsg:
		a.openModal(msg.Project)
		return a, nil
	case CloseModalMsg:
		a.closeModal()
		return a, nil
	case ToggleThemeMsg:
		return a, a.toggleTheme()
	case ToggleHelpMsg:
		a.ShowHelp = !a.ShowHelp
		a.relayout()
		return a, nil
	case themeSavedMsg:
		if msg.Err != nil {
			log.Printf("ui.App: failed to save theme %q: %v", msg.Theme, msg.Err)
		}
		return a, nil
	case tea.KeyMsg:
		if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
			return a, keyCmd
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if a.Page.HandleScroll(msg) {
			return a, nil
		}
		_, cmd := a.Grid.Update(msg)
		a.refreshPage()
		r := a.Grid.CellRect(a.Grid.Cursor)
		a.Page.EnsureVisible(r.Y, r.H)
		return a, cmd
	case tea.MouseMsg:
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		return a, a.handlePageMouse(msg)
	}
	return a, nil
}

// handlePageMouse scrolls the page or activates the card under a left click.
func (m *AppModel) handlePageMouse(msg tea.MouseMsg) tea.Cmd {
	if m.Page.HandleScroll(msg) {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if msg.Y >= m.Page.Height() {
		return nil
	}
	cmd := m.Grid.Click(m.Page.GridPoint(msg.X, msg.Y))
	if cmd != nil {
		m.refreshPage()
	}
	return cmd
}

// openModal pushes a new modal for p. Each open gets a fresh carousel and
// telemetry session. Selecting while a modal is already open is ignored.
func (m *AppModel) openModal(p *catalog.Project) {
	if p == nil || m.Modal() != nil {
		return
	}
	modal := NewProjectModal(p, ModalConfig{
		Styles:        m.Styles,
		Lock:          m.Lock,
		Session:       m.Tracer.StartSession(m.ctx, p.Title, len(p.Images)),
		DragThreshold: m.DragThreshold,
		CellWidth:     m.CellWidth,
		Width:         m.width,
		Height:        m.Page.Height(),
	})
	m.Overlays.Push(Overlay{View: modal})
}

// closeModal pops the top overlay and tears it down.
func (m *AppModel) closeModal() {
	top, ok := m.Overlays.Pop()
	if !ok {
		return
	}
	if modal, ok := top.View.(*ProjectModal); ok {
		modal.Teardown()
	}
}

func (m *AppModel) toggleTheme() tea.Cmd {
	m.Theme = m.Theme.Toggle()
	*m.Styles = NewStyles(m.Theme)
	m.refreshPage()

	store, theme := m.Prefs, m.Theme
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return themeSavedMsg{Theme: theme, Err: store.SaveTheme(string(theme))}
	}
}

func (m *AppModel) helpHeight() int {
	if m.ShowHelp {
		return 1
	}
	return 0
}

// relayout applies the terminal size to the page, grid and open modals.
func (m *AppModel) relayout() {
	ph := max(1, m.height-m.helpHeight())
	m.Page.SetSize(m.width, ph)
	m.Grid.SetWidth(m.Page.ContentWidth())
	m.refreshPage()
	for _, o := range m.Overlays.Stack {
		if modal, ok := o.View.(*ProjectModal); ok {
			modal.SetSize(m.width, ph)
		}
	}
}

func (m *AppModel) refreshPage() {
	m.Page.SetBody(m.Grid.View())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	ph := a.Page.Height()
	screen := a.Page.View()
	if modal := a.Modal(); modal != nil {
		if modal.Enlarged() {
			screen = modal.View()
		} else {
			box := modal.Box()
			screen = Composite(screen, modal.View(), box.X, box.Y, a.width, ph, a.Styles.Backdrop)
		}
	}
	screen = ClipLines(screen, ph)
	if a.ShowHelp {
		screen += "\n" + RenderKeybindHelp(a.KeyHandler.Registry, a.Mode(), a.Styles, a.width)
	}
	return screen
}
