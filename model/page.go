package model

import "fmt"

// Page represents a single laid-out page
type Page struct {
	ID       string
	Index    int // 0-based position in the document
	Size     PageSize
	Margins  Margins
	Elements []PlacedElement // In placement order
}

// NewPage creates an empty page with the given geometry
func NewPage(index int, size PageSize, margins Margins) *Page {
	return &Page{
		ID:       fmt.Sprintf("page-%d", index+1),
		Index:    index,
		Size:     size,
		Margins:  margins,
		Elements: make([]PlacedElement, 0),
	}
}

// AddElement appends a placed element to the page
func (p *Page) AddElement(elem PlacedElement) {
	p.Elements = append(p.Elements, elem)
}

// ContentWidth returns the usable width between the side margins
func (p *Page) ContentWidth() float64 {
	return p.Size.Width - p.Margins.Horizontal()
}

// ContentHeight returns the usable height between the top and bottom margins
func (p *Page) ContentHeight() float64 {
	return p.Size.Height - p.Margins.Vertical()
}

// ContentLeft returns the X coordinate where content starts
func (p *Page) ContentLeft() float64 {
	return p.Margins.Left
}

// ContentTop returns the Y coordinate where content starts
func (p *Page) ContentTop() float64 {
	return p.Margins.Top
}

// ContentBottom returns the Y coordinate where content must end
func (p *Page) ContentBottom() float64 {
	return p.Size.Height - p.Margins.Bottom
}

// ExtractText concatenates the text of all placed text elements
func (p *Page) ExtractText() string {
	var text string
	for _, elem := range p.Elements {
		if te, ok := elem.Element.(TextElement); ok {
			text += te.GetText() + "\n"
		}
	}
	return text
}

// PlacedElement is an element annotated with its final page position
type PlacedElement struct {
	Element   Element
	Bounds    BBox
	PageIndex int

	// Overflow marks a forced placement that exceeds the page's
	// content height.
	Overflow bool

	// SplitInfo is set when the element was divided across pages;
	// nil for elements placed whole.
	SplitInfo *SplitInfo
}

// SplitInfo describes one part of an element divided across pages
type SplitInfo struct {
	Part  int // 1-based part number
	Total int // Total number of parts

	// Continued marks a part with more content following on a later page.
	Continued bool

	// Continuation marks a part that continues content from an earlier page.
	Continuation bool
}

// LayoutResult is the complete outcome of one layout pass
type LayoutResult struct {
	Pages    []*Page
	Elements []PlacedElement // Flat placement list in document order
	Warnings []Warning
}

// PageCount returns the number of pages in the result
func (r *LayoutResult) PageCount() int {
	return len(r.Pages)
}

// Warning records a non-fatal layout problem, such as an element that
// could not fit even a fresh page and was force-placed.
type Warning struct {
	ElementIndex    int
	Reason          string
	ElementHeight   float64
	AvailableHeight float64
}

func (w Warning) String() string {
	return fmt.Sprintf("element %d: %s (height %.1f, available %.1f)",
		w.ElementIndex, w.Reason, w.ElementHeight, w.AvailableHeight)
}
