package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q", ModeGrid) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("j", ModeGrid) != nil {
		t.Error("nil binding should look up as unbound")
	}
	if reg.Lookup("unknown", ModeGrid) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("t", tea.Quit, "theme", []AppMode{ModeGrid})

	if reg.Lookup("t", ModeGrid) == nil {
		t.Error("t should apply in grid mode")
	}
	if reg.Lookup("t", ModeModal) != nil {
		t.Error("t should not apply in modal mode")
	}
	if _, ok := reg.Hints(ModeEnlarged)["t"]; ok {
		t.Error("t hint should be hidden in enlarged mode")
	}
	if reg.Hints(ModeGrid)["t"] != "theme" {
		t.Errorf("hint = %q, want theme", reg.Hints(ModeGrid)["t"])
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModeGrid)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("esc"), ModeModal)
	if consumed {
		t.Error("unbound esc should not be consumed")
	}

	var nilHandler *KeyHandler
	if consumed, _ := nilHandler.Handle(keyMsg("q"), ModeGrid); consumed {
		t.Error("nil handler should not consume")
	}
}

func TestKeyMap_ShortHelpFollowsMode(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")

	has := func(mode AppMode, desc string) bool {
		for _, b := range NewKeyMap(reg, mode).ShortHelp() {
			if b.Help().Desc == desc {
				return true
			}
		}
		return false
	}
	if !has(ModeGrid, "open") || has(ModeGrid, "slide") {
		t.Error("grid help should offer open, not slide")
	}
	if !has(ModeModal, "enlarge") {
		t.Error("modal help should offer enlarge")
	}
	if !has(ModeEnlarged, "back") || has(ModeEnlarged, "enlarge") {
		t.Error("enlarged help should offer back, not enlarge")
	}
	if !has(ModeModal, "quit") {
		t.Error("registry hints should be merged in")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeyEsc.String() returns "esc", KeyRight returns "right", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press, motion and release build left-button mouse messages at cell (x, y).
func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}
