// Package config loads runtime settings from the environment and an
// optional .env file. Command-line flags override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Catalog string `env:"FOLIO_CATALOG"` // catalog file; empty = embedded
	Assets  string `env:"FOLIO_ASSETS"`  // base URL or dir for image refs
	Home    string `env:"FOLIO_HOME"`    // prefs dir; empty = ~/.folio
	Theme   string `env:"FOLIO_THEME"`   // forces a theme; empty = saved pref

	DragThreshold int  `env:"FOLIO_DRAG_THRESHOLD" envDefault:"60"`
	CellWidth     int  `env:"FOLIO_CELL_WIDTH" envDefault:"8"` // pixels per terminal column
	Mouse         bool `env:"FOLIO_MOUSE" envDefault:"true"`

	Owner   string `env:"FOLIO_OWNER" envDefault:"Portfolio"`
	Tagline string `env:"FOLIO_TAGLINE" envDefault:"Selected projects"`
	Contact string `env:"FOLIO_CONTACT"`

	Debug   bool   `env:"FOLIO_DEBUG"`
	LogFile string `env:"FOLIO_LOG_FILE" envDefault:"folio-debug.log"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"folio"`
}

// Themes accepted by Validate. Empty means "use the saved preference".
var Themes = []string{"dark", "light"}

// Load reads envFile (if it exists) into the process environment, then
// parses the environment. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later in the UI.
func (c Config) Validate() error {
	if c.DragThreshold <= 0 {
		return fmt.Errorf("drag threshold must be positive, got %d", c.DragThreshold)
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("cell width must be positive, got %d", c.CellWidth)
	}
	if c.Theme != "" && !isValidTheme(c.Theme) {
		return fmt.Errorf("invalid theme %q: must be one of %v", c.Theme, Themes)
	}
	return nil
}

func isValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}
