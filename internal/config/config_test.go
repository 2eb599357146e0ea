package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.DragThreshold)
	assert.Equal(t, 8, cfg.CellWidth)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, "folio", cfg.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FOLIO_DRAG_THRESHOLD", "90")
	t.Setenv("FOLIO_THEME", "light")
	t.Setenv("FOLIO_MOUSE", "false")
	t.Setenv("FOLIO_CATALOG", "/tmp/catalog.yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.DragThreshold)
	assert.Equal(t, "light", cfg.Theme)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.Catalog)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FOLIO_OWNER=Ada Lovelace\n"), 0o644))
	// t.Setenv registers cleanup so the value set by godotenv is removed.
	t.Setenv("FOLIO_OWNER", "")
	require.NoError(t, os.Unsetenv("FOLIO_OWNER"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", cfg.Owner)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestLoad_BadNumber(t *testing.T) {
	t.Setenv("FOLIO_CELL_WIDTH", "wide")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{DragThreshold: 60, CellWidth: 8}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"ok", func(*Config) {}, false},
		{"dark theme", func(c *Config) { c.Theme = "dark" }, false},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, true},
		{"zero threshold", func(c *Config) { c.DragThreshold = 0 }, true},
		{"negative cell width", func(c *Config) { c.CellWidth = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
