package ui

import "folio/internal/catalog"

// SelectProjectMsg is sent when a card is activated.
type SelectProjectMsg struct {
	Project *catalog.Project
}

// CloseModalMsg is sent by the project modal when it closes itself.
type CloseModalMsg struct{}

// ToggleThemeMsg switches between the dark and light palettes.
type ToggleThemeMsg struct{}

// ToggleHelpMsg shows or hides the help bar.
type ToggleHelpMsg struct{}

// themeSavedMsg reports the result of persisting the theme.
type themeSavedMsg struct {
	Theme Theme
	Err   error
}
