package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the one-line help bar for mode, clipped to width.
func RenderKeybindHelp(reg *KeybindRegistry, mode AppMode, st *Styles, width int) string {
	km := NewKeyMap(reg, mode)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Width = width
	if st != nil {
		helpModel.Styles.ShortKey = st.Close
		helpModel.Styles.ShortDesc = st.Muted
		helpModel.Styles.ShortSeparator = st.Muted
	} else {
		helpModel.Styles.ShortKey = lipgloss.NewStyle().Bold(true)
	}
	return helpModel.ShortHelpView(bindings)
}
