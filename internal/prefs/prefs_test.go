package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_ThemeRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if got := s.Theme(); got != "" {
		t.Errorf("fresh store theme = %q, want empty", got)
	}
	if err := s.SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if got := s.Theme(); got != "light" {
		t.Errorf("Theme() = %q, want light", got)
	}
	if err := s.SaveTheme(" dark "); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if got := s.Theme(); got != "dark" {
		t.Errorf("Theme() = %q, want dark", got)
	}
}

func TestNewStore_DefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	s, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if want := filepath.Join(home, DefaultHome); s.Dir() != want {
		t.Errorf("Dir() = %q, want %q", s.Dir(), want)
	}
}

func TestStore_SaveFailsWhenBaseIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _ := NewStore(f)
	if err := s.SaveTheme("dark"); err == nil {
		t.Error("expected error when base dir is a regular file")
	}
}

func TestStore_NilIsInert(t *testing.T) {
	var s *Store
	if s.Theme() != "" {
		t.Error("nil store should have no theme")
	}
	if err := s.SaveTheme("dark"); err != nil {
		t.Errorf("nil store save: %v", err)
	}
}
