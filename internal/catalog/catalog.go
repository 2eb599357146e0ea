// Package catalog holds the immutable list of showcase projects.
//
// A Catalog is built once at startup, either from the embedded default
// document or from a YAML/JSON file, and is read-only afterwards. Views
// borrow *Project pointers from it; they never copy or modify records.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProjectNotFound is returned by ByTitle when no record has the title.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDuplicateTitle is returned when two records share a title.
	ErrDuplicateTitle = errors.New("duplicate project title")
	// ErrEmptyTitle is returned when a record has a blank title.
	ErrEmptyTitle = errors.New("project title is empty")
)

// TechTag is a technology badge shown on cards and in the modal.
// Icon is optional: either a short glyph or an asset reference.
type TechTag struct {
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Link is an external reference shown in the modal footer.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Project is a single showcase record. Title is the catalog key.
type Project struct {
	Title       string    `yaml:"title" json:"title"`
	Category    string    `yaml:"category" json:"category"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Images      []string  `yaml:"images,omitempty" json:"images,omitempty"`
	Tech        []TechTag `yaml:"tech,omitempty" json:"tech,omitempty"`
	Details     []string  `yaml:"details,omitempty" json:"details,omitempty"`
	Links       []Link    `yaml:"links,omitempty" json:"links,omitempty"`
}

// HasImages reports whether the project has at least one image.
func (p *Project) HasImages() bool {
	return p != nil && len(p.Images) > 0
}

// Cover returns the first image reference, used as the card preview.
func (p *Project) Cover() (string, bool) {
	if !p.HasImages() {
		return "", false
	}
	return p.Images[0], true
}

// Catalog is an ordered, title-indexed collection of projects.
type Catalog struct {
	projects []Project
	byTitle  map[string]int
}

// New validates projects and returns a catalog that owns a copy of them.
// Titles are trimmed and must be non-empty and unique.
func New(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byTitle:  make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		p.Title = strings.TrimSpace(p.Title)
		if p.Title == "" {
			return nil, fmt.Errorf("project %d: %w", i, ErrEmptyTitle)
		}
		if _, dup := c.byTitle[p.Title]; dup {
			return nil, fmt.Errorf("%q: %w", p.Title, ErrDuplicateTitle)
		}
		p.Images = cloneStrings(p.Images)
		p.Details = cloneStrings(p.Details)
		p.Tech = append([]TechTag(nil), p.Tech...)
		p.Links = append([]Link(nil), p.Links...)
		c.byTitle[p.Title] = len(c.projects)
		c.projects = append(c.projects, p)
	}
	return c, nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.projects)
}

// At returns the project at position i. It panics if i is out of range,
// like a slice index.
func (c *Catalog) At(i int) *Project {
	return &c.projects[i]
}

// All returns borrowed pointers to every project in catalog order.
func (c *Catalog) All() []*Project {
	if c == nil {
		return nil
	}
	out := make([]*Project, len(c.projects))
	for i := range c.projects {
		out[i] = &c.projects[i]
	}
	return out
}

// ByTitle looks a project up by its title.
func (c *Catalog) ByTitle(title string) (*Project, error) {
	if c != nil {
		if i, ok := c.byTitle[strings.TrimSpace(title)]; ok {
			return &c.projects[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", title, ErrProjectNotFound)
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// ImageCount returns the total number of images across all projects.
func (c *Catalog) ImageCount() int {
	n := 0
	for _, p := range c.All() {
		n += len(p.Images)
	}
	return n
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
