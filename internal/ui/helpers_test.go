package ui

import (
	"testing"

	"folio/internal/catalog"
)

func testStyles() *Styles {
	st := NewStyles(ThemeDark)
	return &st
}

// testCatalog returns the embedded catalog: four projects, the first with
// ten images and the last with none.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return c
}

func testProject(title string, images int) *catalog.Project {
	p := &catalog.Project{
		Title:       title,
		Category:    "Mobile App",
		Description: "A short description of the project.",
		Tech:        []catalog.TechTag{{Name: "Go", Icon: "◆"}, {Name: "SQL"}},
	}
	for i := 0; i < images; i++ {
		p.Images = append(p.Images, "shots/"+title+"-"+string(rune('a'+i))+".png")
	}
	return p
}
