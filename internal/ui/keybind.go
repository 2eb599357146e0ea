package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps app-wide keys to commands.
// Keys use tea.KeyMsg.String() notation: "q", "ctrl+c", "?".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key to a command in all modes.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[k] = modes
	} else {
		delete(r.modeFilter, k)
	}
}

// Lookup returns the command for a key in mode, or nil if not bound there.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	if !r.appliesToMode(k, mode) {
		return nil
	}
	return r.bindings[k]
}

// Hints returns the described bindings that apply to mode, keyed by key.
func (r *KeybindRegistry) Hints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil || !r.appliesToMode(k, mode) {
			continue
		}
		if d, ok := r.descriptions[k]; ok && d != "" {
			out[k] = d
		}
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode AppMode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeyHandler dispatches key messages to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// Key bindings handled by the views themselves. They are listed here so the
// help bar can show them next to the registry's app-wide keys.
var (
	gridKeys = []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "up", "down", "h", "j", "k", "l"), key.WithHelp("←↑↓→", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	}
	modalKeys = []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "slide")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		key.NewBinding(key.WithKeys("enter", "z"), key.WithHelp("enter", "enlarge")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
	enlargedKeys = []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "slide")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		key.NewBinding(key.WithKeys("esc", "enter", "z"), key.WithHelp("esc", "back")),
	}
)

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
// It merges the bindings of the view owning the screen with the registry's
// hints for the current mode.
type KeyMap struct {
	registry *KeybindRegistry
	mode     AppMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	var bindings []key.Binding
	switch km.mode {
	case ModeModal:
		bindings = append(bindings, modalKeys...)
	case ModeEnlarged:
		bindings = append(bindings, enlargedKeys...)
	default:
		bindings = append(bindings, gridKeys...)
	}
	if km.registry == nil {
		return bindings
	}
	hints := km.registry.Hints(km.mode)

	// Sort keys for stable display
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
