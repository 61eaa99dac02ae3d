// Package folio provides a fluent API for laying out typed content
// elements onto pages.
//
// Basic usage:
//
//	result, warnings, err := folio.FromMarkdown(src).Result()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := folio.FromMarkdown(src).
//	    PageSize(model.Letter).
//	    FontFamily("Georgia").
//	    OrphanLines(3).
//	    Result()
//
// For advanced use cases, the lower-level layout and classify packages
// are also available.
package folio

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/model"
)

// Warning is a non-fatal layout problem reported alongside results.
type Warning = model.Warning

// Compose creates a Composer over already-classified elements.
//
// Example:
//
//	result, warnings, err := folio.Compose(elements...).Result()
func Compose(elements ...model.Element) *Composer {
	return &Composer{
		elements: elements,
		options:  defaultOptions(),
	}
}

// FromMarkdown classifies Markdown source and returns a Composer for
// fluent configuration.
//
// Example:
//
//	pages, warnings, err := folio.FromMarkdown(src).Pages()
func FromMarkdown(src string) *Composer {
	return Compose(classify.ClassifyAs(src, classify.FormatMarkdown)...)
}

// FromHTML classifies an HTML document or fragment and returns a
// Composer for fluent configuration.
func FromHTML(src string) *Composer {
	return Compose(classify.ClassifyAs(src, classify.FormatHTML)...)
}

// FromText classifies plain text (blank-line separated paragraphs)
// and returns a Composer for fluent configuration.
func FromText(src string) *Composer {
	return Compose(classify.ClassifyAs(src, classify.FormatText)...)
}

// FromString sniffs the content format (HTML, Markdown, or plain
// text) and returns a Composer for fluent configuration.
//
// Example:
//
//	result, warnings, err := folio.FromString(src).Result()
func FromString(src string) *Composer {
	return Compose(classify.Classify(src)...)
}

// FromFile reads a file and classifies it, using the file extension
// when it names a known format and content sniffing otherwise. A read
// failure is reported by the terminal operation.
//
// Example:
//
//	result, warnings, err := folio.FromFile("chapter.md").Result()
func FromFile(filename string) *Composer {
	data, err := os.ReadFile(filename)
	if err != nil {
		return &Composer{
			options: defaultOptions(),
			err:     fmt.Errorf("reading %s: %w", filename, err),
		}
	}

	src := string(data)
	format := classify.DetectFile(filename)
	if format == classify.FormatUnknown {
		format = classify.DetectFormat(src)
	}
	return Compose(classify.ClassifyAs(src, format)...)
}

// FormatWarnings renders warnings as a single semicolon-separated
// string, suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := folio.Must(folio.FromMarkdown(src).PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	result := folio.MustResult(folio.FromMarkdown(src).Result())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
