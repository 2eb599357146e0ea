package ui

// AppMode is what currently owns the screen. It selects which key bindings
// apply and which help hints are shown.
type AppMode int

const (
	ModeGrid AppMode = iota
	ModeModal
	ModeEnlarged
)

func (m AppMode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeModal:
		return "Modal"
	case ModeEnlarged:
		return "Enlarged"
	default:
		return "Unknown"
	}
}
