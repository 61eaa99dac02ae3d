package classify

import (
	"fmt"

	"github.com/tsawler/folio/model"
)

// idGen hands out sequential element IDs within one classification
// pass, so identical input always yields identical IDs.
type idGen struct {
	next int
}

func (g *idGen) id() string {
	g.next++
	return fmt.Sprintf("el-%d", g.next)
}

// Classify detects the content format and produces typed elements.
// Content that defeats detection is treated as plain text; the result
// is never nil for non-empty content.
func Classify(content string) []model.Element {
	return ClassifyAs(content, DetectFormat(content))
}

// ClassifyAs produces typed elements for content of a known format,
// bypassing detection.
func ClassifyAs(content string, format Format) []model.Element {
	gen := &idGen{}
	switch format {
	case FormatMarkdown:
		return classifyMarkdown(content, gen)
	case FormatHTML:
		return classifyHTML(content, gen)
	default:
		return classifyText(content, gen)
	}
}
