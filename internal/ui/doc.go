// Package ui is the Bubble Tea front end of the showcase.
//
// Core abstractions:
//   - View: a screen region with its own update and view (Elm-style)
//   - GridView: project cards laid out in columns, with a keyboard cursor
//   - Page: the scrollable viewport holding the header, grid and footer
//   - ProjectModal: the carousel overlay, inline or enlarged
//   - OverlayStack: overlays above the page; the top one receives input first
//   - KeybindRegistry: app-wide key bindings filtered by AppMode
package ui
