// Package prefs persists the one user preference the showcase keeps: the
// color theme.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultHome is the preferences directory under the user's home.
	DefaultHome = ".folio"

	themeFile = "theme"
)

// Store reads and writes preferences under a base directory.
// Layout: <base>/theme containing a single word.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at base, or at ~/.folio when base is empty.
func NewStore(base string) (*Store, error) {
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("prefs: resolve home: %w", err)
		}
		base = filepath.Join(home, DefaultHome)
	}
	return &Store{baseDir: base}, nil
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.baseDir
}

// Theme returns the saved theme, or "" when none is saved or the file is
// unreadable.
func (s *Store) Theme() string {
	if s == nil {
		return ""
	}
	b, err := os.ReadFile(filepath.Join(s.baseDir, themeFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// SaveTheme writes theme, creating the directory if needed.
func (s *Store) SaveTheme(theme string) error {
	if s == nil {
		return nil
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("prefs: create %q: %w", s.baseDir, err)
	}
	path := filepath.Join(s.baseDir, themeFile)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(theme)+"\n"), 0o644); err != nil {
		return fmt.Errorf("prefs: write %q: %w", path, err)
	}
	return nil
}
