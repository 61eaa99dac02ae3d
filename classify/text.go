package classify

import (
	"strings"

	"github.com/tsawler/folio/model"
)

// classifyText splits plain text on blank lines, one element per
// block. Line breaks inside a block collapse so the layout engine
// rewraps to the page width.
func classifyText(content string, gen *idGen) []model.Element {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var elements []model.Element
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Fields(strings.ReplaceAll(block, "\n", " "))
		if len(lines) == 0 {
			continue
		}
		elements = append(elements, mathElement(strings.Join(lines, " "), gen))
	}
	return elements
}
