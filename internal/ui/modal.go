package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/carousel"
	"folio/internal/catalog"
	"folio/internal/scrolllock"
	"folio/internal/telemetry"
	"folio/internal/ui/textutil"
)

// Modal geometry in cells.
const (
	modalMaxWidth   = 76
	modalMinWidth   = 24
	frameLines      = 7 // inline image frame, border included
	closeLabel      = "[x]"
	defaultCellSize = 8 // pixels per column when none is configured
	defaultScreenW  = 80
	defaultScreenH  = 24
)

// Fixed content rows of the inline modal, relative to the box content.
const (
	rowTitle = 0
	rowFrame = 3
	rowDots  = rowFrame + frameLines
)

// ModalConfig carries the collaborators of a ProjectModal.
type ModalConfig struct {
	Styles        *Styles
	Lock          *scrolllock.Lock   // page scroll lock; nil disables locking
	Session       *telemetry.Session // nil disables telemetry
	OnClose       func() tea.Msg     // defaults to CloseModalMsg
	DragThreshold int                // pixels; 0 = carousel default
	CellWidth     int                // pixels per column; 0 = 8
	Width, Height int                // screen size; 0 = 80x24
}

// ProjectModal shows one project: an image carousel with pagination dots,
// the description, highlights, tech badges and links. Clicking the image
// opens the full-screen viewer, where the image can also be dragged.
type ProjectModal struct {
	state   *carousel.State
	styles  *Styles
	lock    *scrolllock.Lock
	handle  *scrolllock.Handle
	session *telemetry.Session
	onClose func() tea.Msg

	cellWidth     int
	width, height int
}

// Ensure ProjectModal implements View.
var _ View = (*ProjectModal)(nil)

// NewProjectModal opens a modal on p with a fresh carousel at the first image.
func NewProjectModal(p *catalog.Project, cfg ModalConfig) *ProjectModal {
	var opts []carousel.Option
	if cfg.DragThreshold > 0 {
		opts = append(opts, carousel.WithDragThreshold(cfg.DragThreshold))
	}
	m := &ProjectModal{
		state:     carousel.Open(p, opts...),
		styles:    cfg.Styles,
		lock:      cfg.Lock,
		session:   cfg.Session,
		onClose:   cfg.OnClose,
		cellWidth: cfg.CellWidth,
		width:     cfg.Width,
		height:    cfg.Height,
	}
	if m.onClose == nil {
		m.onClose = func() tea.Msg { return CloseModalMsg{} }
	}
	if m.cellWidth <= 0 {
		m.cellWidth = defaultCellSize
	}
	if m.styles == nil {
		st := NewStyles(ThemeDark)
		m.styles = &st
	}
	return m
}

// State returns the carousel behind the modal.
func (m *ProjectModal) State() *carousel.State { return m.state }

// Project returns the project being shown.
func (m *ProjectModal) Project() *catalog.Project { return m.state.Project() }

// Enlarged reports whether the full-screen viewer is showing.
func (m *ProjectModal) Enlarged() bool { return m.state.Enlarged() }

// SetSize records the screen size.
func (m *ProjectModal) SetSize(w, h int) {
	m.width, m.height = w, h
}

func (m *ProjectModal) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultScreenW
	}
	if h <= 0 {
		h = defaultScreenH
	}
	return w, h
}

// Teardown closes the carousel, releases the scroll lock and ends the
// telemetry session. Safe to call more than once.
func (m *ProjectModal) Teardown() {
	m.state.Close()
	m.syncLock()
	m.session.End()
}

// Init implements View.
func (m *ProjectModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ProjectModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if !m.state.IsOpen() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *ProjectModal) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.state
	switch k := msg.String(); k {
	case "esc":
		if s.Dismiss() == carousel.Closed {
			return m.close()
		}
		m.session.Shrink(s.Index())
		m.syncLock()
	case "right", "l":
		if s.Next() {
			m.session.Slide(s.Index(), s.Len(), "key")
		}
	case "left", "h":
		if s.Prev() {
			m.session.Slide(s.Index(), s.Len(), "key")
		}
	case "enter", "z":
		if s.Enlarged() {
			m.shrink()
		} else {
			m.enlarge()
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if s.Jump(int(k[0] - '1')) {
			m.session.Slide(s.Index(), s.Len(), "dot")
		}
	}
	return nil
}

func (m *ProjectModal) handleMouse(msg tea.MouseMsg) tea.Cmd {
	s := m.state
	px := msg.X * m.cellWidth

	switch msg.Action {
	case tea.MouseActionMotion:
		s.DragMove(px)
		return nil
	case tea.MouseActionRelease:
		if s.Dragging() {
			s.DragMove(px)
			offset := s.DragOffset()
			out := s.DragEnd()
			m.session.Drag(offset, out.String())
			if out != carousel.DragNone {
				m.session.Slide(s.Index(), s.Len(), "drag")
			}
		}
		return nil
	case tea.MouseActionPress:
	default:
		return nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	l := m.layout()
	x, y := msg.X, msg.Y
	if l.close.Contains(x, y) {
		if s.Enlarged() {
			m.shrink()
			return nil
		}
		return m.close()
	}
	for i, d := range l.dots {
		if d.Contains(x, y) {
			if s.Jump(i) {
				m.session.Slide(s.Index(), s.Len(), "dot")
			}
			return nil
		}
	}
	switch {
	case l.image.Contains(x, y):
		if s.Enlarged() {
			s.DragStart(px)
		} else {
			m.enlarge()
		}
	case s.Enlarged():
		m.shrink()
	case !l.box.Contains(x, y):
		return m.close()
	}
	return nil
}

func (m *ProjectModal) enlarge() {
	if m.state.Enlarge() {
		m.session.Enlarge(m.state.Index())
		m.syncLock()
	}
}

func (m *ProjectModal) shrink() {
	if m.state.Shrink() {
		m.session.Shrink(m.state.Index())
		m.syncLock()
	}
}

func (m *ProjectModal) close() tea.Cmd {
	m.Teardown()
	return m.onClose
}

// syncLock holds the page scroll lock exactly while the viewer is enlarged.
func (m *ProjectModal) syncLock() {
	switch {
	case m.state.Enlarged() && m.handle == nil && m.lock != nil:
		m.handle = m.lock.Acquire()
	case !m.state.Enlarged() && m.handle != nil:
		m.handle.Release()
		m.handle = nil
	}
}

// modalLayout holds the hit areas of the current presentation in screen
// cells.
type modalLayout struct {
	box   Rect
	close Rect
	image Rect
	dots  []Rect
}

// Box returns the screen rectangle the modal draws into.
func (m *ProjectModal) Box() Rect { return m.layout().box }

func (m *ProjectModal) layout() modalLayout {
	if m.state.Enlarged() {
		return m.enlargedLayout()
	}
	return m.inlineLayout()
}

func (m *ProjectModal) boxWidth() int {
	w, _ := m.size()
	return max(min(w-4, modalMaxWidth), min(w, modalMinWidth))
}

func (m *ProjectModal) inlineLayout() modalLayout {
	w, h := m.size()
	bw := m.boxWidth()
	cw := bw - 4
	bh := len(m.inlineLines(cw)) + 2
	bx := max(0, (w-bw)/2)
	by := max(0, (h-bh)/2)
	cx, cy := bx+2, by+1

	l := modalLayout{
		box:   Rect{X: bx, Y: by, W: bw, H: bh},
		close: Rect{X: cx + cw - len(closeLabel), Y: cy + rowTitle, W: len(closeLabel), H: 1},
		image: Rect{X: cx, Y: cy + rowFrame, W: cw, H: frameLines},
	}
	l.dots = dotRects(m.state.Len(), cx, cy+rowDots, cw)
	return l
}

func (m *ProjectModal) enlargedLayout() modalLayout {
	w, h := m.size()
	return modalLayout{
		box:   Rect{X: 0, Y: 0, W: w, H: h},
		close: Rect{X: w - 1 - len(closeLabel), Y: 0, W: len(closeLabel), H: 1},
		image: Rect{X: 2, Y: 1, W: max(1, w-4), H: max(1, h-3)},
		dots:  dotRects(m.state.Len(), 0, h-2, w),
	}
}

// dotRects returns the hit area of each pagination dot on a dots row of
// width columns starting at x. Dots are two columns apart and the row is
// centered; each hit area covers the dot and the space before it.
func dotRects(n, x, y, width int) []Rect {
	if n <= 0 {
		return nil
	}
	start := x + max(0, (width-2*n)/2)
	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = Rect{X: start + 2*i, Y: y, W: 2, H: 1}
	}
	return rects
}

// dotsView renders the pagination dots with bubbles/paginator.
func (m *ProjectModal) dotsView() string {
	n := m.state.Len()
	if n == 0 {
		return ""
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = " " + m.styles.DotActive.Render("●")
	p.InactiveDot = " " + m.styles.DotIdle.Render("○")
	p.SetTotalPages(n)
	p.Page = m.state.Index()
	return p.View()
}

// centerStyled centers an already styled string in width columns.
func centerStyled(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// imageLines describes the current slide as inner frame lines of the given
// size, shifted by shift columns.
func (m *ProjectModal) imageLines(width, height, shift int) []string {
	var label []string
	if cur, ok := m.state.Current(); ok {
		label = []string{
			"▣ " + catalog.AssetName(cur),
			fmt.Sprintf("%d / %d", m.state.Index()+1, m.state.Len()),
		}
	} else {
		label = []string{noImageLabel}
	}
	lines := make([]string, height)
	top := max(0, (height-len(label))/2)
	for i := range lines {
		text := ""
		if j := i - top; j >= 0 && j < len(label) {
			text = label[j]
		}
		lines[i] = textutil.Shift(textutil.Center(text, width), shift, width)
	}
	return lines
}

// View implements View.
func (m *ProjectModal) View() string {
	if !m.state.IsOpen() {
		return ""
	}
	if m.state.Enlarged() {
		return m.enlargedView()
	}
	cw := m.boxWidth() - 4
	return m.styles.Modal.Width(cw + 2).Render(strings.Join(m.inlineLines(cw), "\n"))
}

// inlineLines builds the content rows of the inline box, each cw columns
// wide, clipped to the screen height.
func (m *ProjectModal) inlineLines(cw int) []string {
	st := m.styles
	p := m.state.Project()
	if p == nil {
		p = &catalog.Project{}
	}
	pad := func(s string) string { return textutil.PadRightVisual(s, cw) }

	titleW := max(1, cw-len(closeLabel)-1)
	lines := []string{
		st.Title.Render(textutil.PadRightVisual(p.Title, titleW)) + " " + st.Close.Render(closeLabel),
		st.Category.Render(pad(p.Category)),
		"",
	}

	inner := m.imageLines(cw-2, frameLines-2, 0)
	frame := st.Frame.Width(cw - 2).Render(strings.Join(inner, "\n"))
	lines = append(lines, strings.Split(frame, "\n")...)
	lines = append(lines, centerStyled(m.dotsView(), cw), "")

	for _, l := range textutil.Wrap(p.Description, cw) {
		lines = append(lines, st.Normal.Render(pad(l)))
	}
	if len(p.Details) > 0 {
		lines = append(lines, "", st.Section.Render(pad("Highlights")))
		for _, d := range p.Details {
			for i, l := range textutil.Wrap(d, cw-2) {
				bullet := "  "
				if i == 0 {
					bullet = st.Bullet.Render("•") + " "
				}
				lines = append(lines, bullet+st.Normal.Render(textutil.PadRightVisual(l, cw-2)))
			}
		}
	}
	if len(p.Tech) > 0 {
		lines = append(lines, "")
		for _, l := range textutil.Wrap(badgeLine(p.Tech), cw) {
			lines = append(lines, st.Badge.Render(pad(l)))
		}
	}
	for i, link := range p.Links {
		if i == 0 {
			lines = append(lines, "")
		}
		lines = append(lines, st.Muted.Render(pad(link.Label+": "+link.URL)))
	}
	lines = append(lines, "", st.Hint.Render(pad(m.inlineHint())))

	_, h := m.size()
	if maxLines := h - 2; maxLines > rowDots && len(lines) > maxLines {
		lines = append(lines[:maxLines-1], st.Hint.Render(pad(m.inlineHint())))
	}
	return lines
}

func (m *ProjectModal) inlineHint() string {
	if m.state.Empty() {
		return "esc close"
	}
	return "←/→ slide · 1-9 jump · enter enlarge · esc close"
}

// enlargedView fills the screen with the current slide. The frame follows a
// drag in progress.
func (m *ProjectModal) enlargedView() string {
	w, h := m.size()
	st := m.styles
	l := m.enlargedLayout()
	p := m.state.Project()

	lines := make([]string, 0, h)
	title := ""
	if p != nil {
		title = p.Title
	}
	titleW := max(1, l.close.X-3)
	lines = append(lines, "  "+st.Title.Render(textutil.PadRightVisual(title, titleW))+" "+st.Close.Render(closeLabel)+" ")

	shift := m.state.DragOffset() / m.cellWidth
	inner := m.imageLines(l.image.W-2, max(1, l.image.H-2), shift)
	frame := st.Frame.Width(l.image.W - 2).Render(strings.Join(inner, "\n"))
	for _, fl := range strings.Split(frame, "\n") {
		lines = append(lines, "  "+fl)
	}
	lines = append(lines,
		centerStyled(m.dotsView(), w),
		st.Hint.Render(textutil.Center("←/→ or drag · 1-9 jump · esc back", w)),
	)
	return ClipLines(strings.Join(lines, "\n"), h)
}
