package ui

import (
	"fmt"
	"strings"

	"folio/internal/catalog"
	"folio/internal/ui/textutil"
)

// Card geometry in terminal cells, border included.
const (
	CardWidth  = 34
	CardHeight = 10

	cardInner      = CardWidth - 4 // border and one column of padding each side
	cardLines      = CardHeight - 2
	coverLines     = 3
	noImageLabel   = "No Image"
	badgeSeparator = " · "
)

// RenderCard draws one project tile: a cover area showing the first image
// reference (or a "No Image" placeholder), the title, the category, up to two
// lines of description and the tech badges. Selected cards get the
// highlighted border.
func RenderCard(p *catalog.Project, selected bool, st *Styles) string {
	lines := make([]string, 0, cardLines)
	lines = append(lines, cardCover(p, st)...)

	lines = append(lines, st.Title.Render(textutil.PadRightVisual(p.Title, cardInner)))
	lines = append(lines, st.Category.Render(textutil.PadRightVisual(p.Category, cardInner)))

	desc := textutil.Wrap(p.Description, cardInner)
	for i := 0; i < 2; i++ {
		line := ""
		if i < len(desc) {
			line = desc[i]
			if i == 1 && len(desc) > 2 {
				line = textutil.Truncate(line+" "+desc[2], cardInner)
			}
		}
		lines = append(lines, st.Normal.Render(textutil.PadRightVisual(line, cardInner)))
	}

	lines = append(lines, st.Badge.Render(textutil.PadRightVisual(badgeLine(p.Tech), cardInner)))

	box := st.Card
	if selected {
		box = st.CardSelected
	}
	return box.Width(cardInner + 2).Render(strings.Join(lines, "\n"))
}

func cardCover(p *catalog.Project, st *Styles) []string {
	blank := strings.Repeat(" ", cardInner)
	cover, ok := p.Cover()
	if !ok {
		return []string{
			st.Placeholder.Render(blank),
			st.Placeholder.Render(textutil.Center(noImageLabel, cardInner)),
			st.Placeholder.Render(blank),
		}
	}
	count := fmt.Sprintf("%d image", len(p.Images))
	if len(p.Images) != 1 {
		count += "s"
	}
	return []string{
		st.Cover.Render(blank),
		st.Cover.Render(textutil.Center("▣ "+catalog.AssetName(cover), cardInner)),
		st.Cover.Render(textutil.Center(count, cardInner)),
	}
}

// badgeLine joins tech tags, prefixing each with its icon when the icon is a
// glyph that fits in a terminal cell.
func badgeLine(tech []catalog.TechTag) string {
	parts := make([]string, 0, len(tech))
	for _, t := range tech {
		parts = append(parts, badgeLabel(t))
	}
	return strings.Join(parts, badgeSeparator)
}

func badgeLabel(t catalog.TechTag) string {
	if t.Icon != "" && catalog.IsGlyph(t.Icon) {
		return t.Icon + " " + t.Name
	}
	return t.Name
}
