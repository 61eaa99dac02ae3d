package layout

import (
	"strings"

	"github.com/tsawler/folio/font"
)

// paragraphSeparator delimits paragraphs inside text content. Splitting
// and rejoining on this exact separator keeps element splits lossless.
const paragraphSeparator = "\n\n"

// paragraphGapFactor is the extra spacing between adjacent paragraphs,
// as a fraction of one line height.
const paragraphGapFactor = 0.5

// splitParagraphs divides content into paragraphs on blank lines
func splitParagraphs(content string) []string {
	return strings.Split(content, paragraphSeparator)
}

// joinParagraphs is the inverse of splitParagraphs
func joinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, paragraphSeparator)
}

// lineCount returns the number of display lines a paragraph occupies
// after greedy word wrapping at the given character budget. Words wider
// than one line are force-chunked. Empty or whitespace-only paragraphs
// occupy one line, never zero.
func lineCount(paragraph string, limit int) int {
	if limit < 1 {
		limit = 1
	}

	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return 1
	}

	lines := 1
	current := 0 // cells used on the current line
	for _, word := range words {
		cells := font.TextCells(word)

		if current > 0 {
			if current+1+cells <= limit {
				current += 1 + cells
				continue
			}
			lines++
			current = 0
		}

		if cells <= limit {
			current = cells
			continue
		}

		// Force-chunk an overlong word across as many lines as it needs.
		full := cells / limit
		rem := cells % limit
		if rem == 0 {
			lines += full - 1
			current = limit
		} else {
			lines += full
			current = rem
		}
	}
	return lines
}

// wrappedLineCount returns how many display lines a single source line
// occupies when wrapped at the character budget, at minimum 1. Used for
// code, where wrapping is per-character rather than per-word.
func wrappedLineCount(line string, limit int) int {
	if limit < 1 {
		limit = 1
	}
	cells := font.TextCells(line)
	if cells <= limit {
		return 1
	}
	n := cells / limit
	if cells%limit > 0 {
		n++
	}
	return n
}
