package classify

import (
	"path/filepath"
	"strings"
)

// Format represents a supported input content format.
type Format int

const (
	// FormatUnknown indicates an unrecognized format.
	FormatUnknown Format = iota
	// FormatMarkdown indicates Markdown content.
	FormatMarkdown
	// FormatHTML indicates an HTML document.
	FormatHTML
	// FormatText indicates plain text.
	FormatText
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "Markdown"
	case FormatHTML:
		return "HTML"
	case FormatText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatText:
		return ".txt"
	default:
		return ""
	}
}

// DetectFile determines content format from a filename extension.
func DetectFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".mdown":
		return FormatMarkdown
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".txt", ".text":
		return FormatText
	default:
		return FormatUnknown
	}
}

// DetectFormat sniffs the content itself. HTML is checked first since
// an HTML document full of asterisks should not read as Markdown;
// anything with no recognizable structure falls back to plain text.
func DetectFormat(content string) Format {
	if looksLikeHTML(content) {
		return FormatHTML
	}
	if looksLikeMarkdown(content) {
		return FormatMarkdown
	}
	return FormatText
}

// looksLikeHTML checks for document-level HTML signatures.
func looksLikeHTML(content string) bool {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	if trimmed == "" {
		return false
	}

	upper := strings.ToUpper(trimmed[:min(512, len(trimmed))])
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	// A fragment counts when it opens with a common block tag.
	for _, tag := range []string{"<P>", "<P ", "<DIV", "<BODY", "<TABLE", "<UL>", "<OL>", "<H1", "<H2", "<H3"} {
		if strings.HasPrefix(upper, tag) {
			return true
		}
	}
	return false
}

// markdownMarkers are line prefixes that signal Markdown structure.
var markdownMarkers = []string{"# ", "## ", "### ", "#### ", "- ", "* ", "+ ", "> ", "```", "1. ", "|"}

// looksLikeMarkdown checks for structural Markdown markers at line
// starts. A single hit is enough: plain prose almost never opens a
// line with them.
func looksLikeMarkdown(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		for _, marker := range markdownMarkers {
			if strings.HasPrefix(trimmed, marker) {
				return true
			}
		}
		if strings.HasPrefix(trimmed, "[") && strings.Contains(trimmed, "](") {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
