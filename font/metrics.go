package font

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// FamilyClass groups font families by their typical advance width
type FamilyClass int

const (
	FamilyClassSans FamilyClass = iota
	FamilyClassSerif
	FamilyClassMonospace
)

func (fc FamilyClass) String() string {
	switch fc {
	case FamilyClassSerif:
		return "serif"
	case FamilyClassMonospace:
		return "monospace"
	default:
		return "sans"
	}
}

// Average advance width per family class, in 1000ths of em.
// Courier's fixed advance is 600; measured averages for common serif and
// sans faces land near 550 and 580.
var classWidths = map[FamilyClass]float64{
	FamilyClassMonospace: 600,
	FamilyClassSerif:     550,
	FamilyClassSans:      580,
}

// Family name substrings that identify monospace faces
var monospaceKeywords = []string{
	"courier", "mono", "consolas", "menlo", "monaco",
	"inconsolata", "fira code", "source code", "jetbrains",
}

// Family name substrings that identify serif faces
var serifKeywords = []string{
	"times", "georgia", "garamond", "palatino", "cambria",
	"book", "serif",
}

// ClassifyFamily maps a font family string to its width class.
// Unknown families classify as sans. "sans-serif" is sans, not serif.
func ClassifyFamily(family string) FamilyClass {
	lower := strings.ToLower(family)

	for _, kw := range monospaceKeywords {
		if strings.Contains(lower, kw) {
			return FamilyClassMonospace
		}
	}
	if strings.Contains(lower, "sans") {
		return FamilyClassSans
	}
	for _, kw := range serifKeywords {
		if strings.Contains(lower, kw) {
			return FamilyClassSerif
		}
	}
	return FamilyClassSans
}

// Measurer estimates character widths for a font family at a size.
// The layout engine depends only on this interface, so an implementation
// backed by real glyph metrics can be substituted for the built-in
// [Estimator] without touching the paginator.
type Measurer interface {
	AverageCharWidth(family string, size float64) float64
}

// Estimator is the built-in heuristic [Measurer]. It approximates the
// average character width from the family's width class and memoizes
// results by (family, size). Safe for concurrent use.
//
// Results are approximate bounds, not exact typesetting: treat a computed
// line budget as a fit estimate, never as glyph positioning.
type Estimator struct {
	cache *widthCache
}

// NewEstimator creates an estimator with an empty memo cache
func NewEstimator() *Estimator {
	return &Estimator{cache: newWidthCache()}
}

// AverageCharWidth returns the estimated average character width in
// points for the family at the given size.
func (e *Estimator) AverageCharWidth(family string, size float64) float64 {
	key := newWidthKey(family, size)
	if w, ok := e.cache.get(key); ok {
		return w
	}
	w := size * classWidths[ClassifyFamily(family)] / 1000
	e.cache.put(key, w)
	return w
}

// StringWidth estimates the rendered width of s in points
func (e *Estimator) StringWidth(s, family string, size float64) float64 {
	avg := e.AverageCharWidth(family, size)
	return avg * float64(TextCells(s))
}

// CharsPerLine returns how many average characters fit in the available
// width, at minimum 1.
func CharsPerLine(m Measurer, available float64, family string, size float64) int {
	if available <= 0 || size <= 0 {
		return 1
	}
	avg := m.AverageCharWidth(family, size)
	if avg <= 0 {
		return 1
	}
	n := int(math.Floor(available / avg))
	if n < 1 {
		n = 1
	}
	return n
}

// RuneCells returns the approximate cell count of a rune: 2 for East
// Asian wide and fullwidth runes, 0 for combining marks, otherwise 1.
func RuneCells(r rune) int {
	if unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// TextCells returns the approximate cell count of a string
func TextCells(s string) int {
	n := 0
	for _, r := range s {
		n += RuneCells(r)
	}
	return n
}
