package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Format is the encoding of a catalog document.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatForPath picks the document format from a file extension.
// Anything that is not .json is read as YAML (a superset of JSON).
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// document is the on-disk shape: a single top-level projects list.
type document struct {
	Projects []Project `yaml:"projects" json:"projects"`
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog yaml: %w", err)
		}
	}
	c, err := New(doc.Projects)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file. The format is chosen from the extension.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	c, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultDocument, FormatYAML)
}

// LoadOrDefault loads path, or the embedded catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
