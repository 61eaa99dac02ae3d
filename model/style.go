package model

// TextAlignment represents horizontal text alignment
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Style holds per-element typography and spacing options.
// Zero values mean "unset"; defaults are resolved against the engine
// configuration at measurement time, never stored on the element.
type Style struct {
	FontFamily    string
	FontSize      float64
	LineHeight    float64
	TextAlign     TextAlignment
	MarginBottom  float64
	Width         float64
	LatexSegments []LatexSpan
}

// LatexSpan marks a math run inside element content as byte offsets
// [Start, End) into the content string.
type LatexSpan struct {
	Start int
	End   int
}

// Valid reports whether the span has positive extent within a content
// string of length n.
func (s LatexSpan) Valid(n int) bool {
	return s.Start >= 0 && s.End > s.Start && s.End <= n
}
