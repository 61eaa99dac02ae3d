package model

import "strings"

// ElementType represents the type of content element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeText
	ElementTypeHeading
	ElementTypeCode
	ElementTypeTable
	ElementTypeImage
	ElementTypeLatex
	ElementTypeList
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeText:
		return "text"
	case ElementTypeHeading:
		return "heading"
	case ElementTypeCode:
		return "code"
	case ElementTypeTable:
		return "table"
	case ElementTypeImage:
		return "image"
	case ElementTypeLatex:
		return "latex"
	case ElementTypeList:
		return "list"
	default:
		return "unknown"
	}
}

// Element is the interface for all content elements.
// Elements are immutable once classified; layout never modifies them.
type Element interface {
	ID() string
	Type() ElementType
	ZIndex() int
}

// TextElement is an interface for elements whose content is text
type TextElement interface {
	Element
	GetText() string
}

// Text represents paragraph-flow text.
// Paragraphs are separated by blank lines within Content.
type Text struct {
	ElementID string
	Content   string
	Style     Style
	ZOrder    int
}

func (t *Text) ID() string        { return t.ElementID }
func (t *Text) Type() ElementType { return ElementTypeText }
func (t *Text) ZIndex() int       { return t.ZOrder }
func (t *Text) GetText() string   { return t.Content }

// Heading represents a heading with a level between 1 and 6
type Heading struct {
	ElementID string
	Content   string
	Level     int
	Style     Style
	ZOrder    int
}

func (h *Heading) ID() string        { return h.ElementID }
func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) ZIndex() int       { return h.ZOrder }
func (h *Heading) GetText() string   { return h.Content }

// Code represents a preformatted code block.
// Source line boundaries are significant and never reflowed.
type Code struct {
	ElementID string
	Lines     []string
	Language  string
	Style     Style
	ZOrder    int
}

func (c *Code) ID() string        { return c.ElementID }
func (c *Code) Type() ElementType { return ElementTypeCode }
func (c *Code) ZIndex() int       { return c.ZOrder }
func (c *Code) GetText() string   { return strings.Join(c.Lines, "\n") }

// Table represents tabular content as cell text
type Table struct {
	ElementID string
	Header    []string
	Rows      [][]string
	Style     Style
	ZOrder    int
}

func (t *Table) ID() string        { return t.ElementID }
func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) ZIndex() int       { return t.ZOrder }

// RowCount returns the number of body rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the widest row length, counting the header
func (t *Table) ColCount() int {
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Image represents an image placed by its natural dimensions.
// Source may be a URL, a file path, or a data URI; the engine only
// uses it as an identifier.
type Image struct {
	ElementID     string
	Source        string
	NaturalWidth  float64
	NaturalHeight float64
	Alt           string
	Style         Style
	ZOrder        int
}

func (i *Image) ID() string        { return i.ElementID }
func (i *Image) Type() ElementType { return ElementTypeImage }
func (i *Image) ZIndex() int       { return i.ZOrder }

// AspectRatio returns width/height of the natural size, or 0 if unknown
func (i *Image) AspectRatio() float64 {
	if i.NaturalHeight <= 0 {
		return 0
	}
	return i.NaturalWidth / i.NaturalHeight
}

// Latex represents text containing mathematical notation.
// Math runs inside Content are marked by Style.LatexSegments; when no
// segments are present the entire content is treated as one math run.
type Latex struct {
	ElementID string
	Content   string
	Style     Style
	ZOrder    int
}

func (l *Latex) ID() string        { return l.ElementID }
func (l *Latex) Type() ElementType { return ElementTypeLatex }
func (l *Latex) ZIndex() int       { return l.ZOrder }
func (l *Latex) GetText() string   { return l.Content }

// List represents an ordered or unordered list
type List struct {
	ElementID string
	Items     []ListItem
	Ordered   bool
	Style     Style
	ZOrder    int
}

func (l *List) ID() string        { return l.ElementID }
func (l *List) Type() ElementType { return ElementTypeList }
func (l *List) ZIndex() int       { return l.ZOrder }
func (l *List) GetText() string {
	var sb strings.Builder
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(item.Text)
	}
	return sb.String()
}

// ListItem represents a single list item
type ListItem struct {
	Text  string
	Level int
}
