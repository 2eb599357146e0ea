// Package carousel implements the image carousel state machine behind the
// project modal.
//
// A State is created when a modal opens and discarded when it closes. It is
// modeled as one tagged phase plus the payload that phase carries:
//
//	Closed
//	Viewing{index}                         inline modal
//	Enlarged{index}                        full-screen viewer
//	Dragging{index, startX, offset}        pointer drag inside the viewer
//
// All payload fields are unexported, so callers can only move between phases
// through the methods below and cannot build an illegal combination (for
// example a drag offset while the viewer is not enlarged).
//
// Index arithmetic is circular. With zero images every navigation method is
// a no-op and the index stays at 0.
package carousel

import "folio/internal/catalog"

// DefaultDragThreshold is the horizontal displacement, in pixels, a drag must
// reach before it changes the slide.
const DefaultDragThreshold = 60

// Phase is the tag of the carousel state.
type Phase int

const (
	Closed Phase = iota
	Viewing
	Enlarged
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "Closed"
	case Viewing:
		return "Viewing"
	case Enlarged:
		return "Enlarged"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// DragOutcome is what a completed drag did to the index.
type DragOutcome int

const (
	DragNone DragOutcome = iota
	DragNext
	DragPrev
)

func (o DragOutcome) String() string {
	switch o {
	case DragNext:
		return "next"
	case DragPrev:
		return "prev"
	default:
		return "none"
	}
}

// NextIndex is (i + 1) mod n. It returns 0 when n <= 0.
func NextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// PrevIndex is (i - 1 + n) mod n. It returns 0 when n <= 0.
func PrevIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i - 1 + n) % n
}

// Option configures a State.
type Option func(*State)

// WithDragThreshold overrides DefaultDragThreshold. Non-positive values are
// ignored.
func WithDragThreshold(px int) Option {
	return func(s *State) {
		if px > 0 {
			s.threshold = px
		}
	}
}

// State is the carousel for one open modal session.
type State struct {
	project   *catalog.Project // borrowed from the catalog
	phase     Phase
	count     int
	index     int
	startX    int // Dragging only
	offset    int // Dragging only
	threshold int
}

// New opens a carousel over count images: Viewing{0}.
func New(count int, opts ...Option) *State {
	if count < 0 {
		count = 0
	}
	s := &State{
		phase:     Viewing,
		count:     count,
		threshold: DefaultDragThreshold,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open starts a session over p's images. p is borrowed, not copied; a nil
// project behaves like one without images.
func Open(p *catalog.Project, opts ...Option) *State {
	n := 0
	if p != nil {
		n = len(p.Images)
	}
	s := New(n, opts...)
	s.project = p
	return s
}

// Project returns the project the session was opened for, or nil.
func (s *State) Project() *catalog.Project { return s.project }

// Current returns the image reference under the index.
func (s *State) Current() (string, bool) {
	if s.project == nil || s.Empty() || s.index >= len(s.project.Images) {
		return "", false
	}
	return s.project.Images[s.index], true
}

// Phase returns the current tag.
func (s *State) Phase() Phase { return s.phase }

// IsOpen reports whether the state has not been closed.
func (s *State) IsOpen() bool { return s.phase != Closed }

// Len returns the number of images.
func (s *State) Len() int { return s.count }

// Empty reports whether there are no images to navigate.
func (s *State) Empty() bool { return s.Len() == 0 }

// Index returns the current slide. It is always in [0, Len()) when Len() > 0
// and 0 otherwise.
func (s *State) Index() int { return s.index }

// Enlarged reports whether the full-screen viewer is showing.
func (s *State) Enlarged() bool { return s.phase == Enlarged || s.phase == Dragging }

// Dragging reports whether a pointer drag is in progress.
func (s *State) Dragging() bool { return s.phase == Dragging }

// DragOffset is the live horizontal displacement of the drag in progress,
// 0 outside Dragging.
func (s *State) DragOffset() int {
	if s.phase != Dragging {
		return 0
	}
	return s.offset
}

// Threshold returns the drag threshold in pixels.
func (s *State) Threshold() int { return s.threshold }

// Next advances one slide, wrapping at the end. Reports whether the index
// changed.
func (s *State) Next() bool {
	return s.setIndex(NextIndex(s.Index(), s.Len()))
}

// Prev steps back one slide, wrapping at the start.
func (s *State) Prev() bool {
	return s.setIndex(PrevIndex(s.Index(), s.Len()))
}

// Jump sets the index directly, as a pagination dot does. Out-of-range
// indexes are ignored. Reports whether the index changed.
func (s *State) Jump(i int) bool {
	if i < 0 || i >= s.Len() {
		return false
	}
	return s.setIndex(i)
}

func (s *State) setIndex(i int) bool {
	if !s.IsOpen() || s.Empty() || i == s.index {
		return false
	}
	s.index = i
	return true
}

// Enlarge moves Viewing to Enlarged. It is a no-op without images.
func (s *State) Enlarge() bool {
	if s.phase != Viewing || s.Empty() {
		return false
	}
	s.phase = Enlarged
	return true
}

// Shrink leaves the viewer (dropping any drag in progress) and returns to
// Viewing.
func (s *State) Shrink() bool {
	if !s.Enlarged() {
		return false
	}
	s.clearDrag()
	s.phase = Viewing
	return true
}

// Dismiss is the Escape / close-button transition: Enlarged goes back to
// Viewing, Viewing goes to Closed. It returns the resulting phase.
func (s *State) Dismiss() Phase {
	if s.Enlarged() {
		s.Shrink()
		return s.phase
	}
	s.Close()
	return s.phase
}

// Close ends the session from any phase.
func (s *State) Close() {
	s.clearDrag()
	s.phase = Closed
}

// DragStart begins a drag at pointer position x. Drags are only accepted in
// the enlarged viewer and only when there is something to slide.
func (s *State) DragStart(x int) bool {
	if s.phase != Enlarged || s.Empty() {
		return false
	}
	s.phase = Dragging
	s.startX = x
	s.offset = 0
	return true
}

// DragMove records the live displacement. Ignored outside Dragging.
func (s *State) DragMove(x int) {
	if s.phase != Dragging {
		return
	}
	s.offset = x - s.startX
}

// DragEnd releases the drag and returns to Enlarged. A displacement of at
// least the threshold to the left advances, to the right goes back, and
// anything smaller leaves the index alone. The offset is reset either way.
// A release with no drag in progress (for example when the press was never
// captured) is a no-op.
func (s *State) DragEnd() DragOutcome {
	if s.phase != Dragging {
		return DragNone
	}
	d := s.offset
	s.clearDrag()
	s.phase = Enlarged
	switch {
	case d <= -s.threshold:
		s.Next()
		return DragNext
	case d >= s.threshold:
		s.Prev()
		return DragPrev
	default:
		return DragNone
	}
}

// DragCancel abandons a drag without changing the slide.
func (s *State) DragCancel() {
	if s.phase != Dragging {
		return
	}
	s.clearDrag()
	s.phase = Enlarged
}

func (s *State) clearDrag() {
	s.startX = 0
	s.offset = 0
}
