package model

// Dimensions holds the computed size of one element at a given available
// width. Dimensions are ephemeral: recomputed on every layout pass and
// never persisted.
type Dimensions struct {
	Width     float64
	Height    float64
	LineCount int

	// CanSplit indicates the element may be divided across a page
	// boundary.
	CanSplit bool

	ContentType ElementType

	// SplitHints carries measurement byproducts the splitter reuses.
	SplitHints SplitHints
}

// SplitHints carries per-type measurement detail from the dimension
// calculator to the element splitter, so splitting never re-measures
// from scratch.
type SplitHints struct {
	// LineHeight is the computed line pitch in points.
	LineHeight float64

	// ParagraphLines holds the wrapped line count of each paragraph
	// (text and heading elements).
	ParagraphLines []int

	// HeaderHeight is the measured header block height (tables).
	HeaderHeight float64

	// RowHeights holds the measured height of each body row (tables).
	RowHeights []float64

	// ItemHeights holds the measured height of each item (lists).
	ItemHeights []float64

	// ItemLines holds the wrapped line count of each item (lists).
	ItemLines []int

	// Padding is the block padding applied on each side (code).
	Padding float64

	// HeaderRepeat indicates continuation chunks repeat the header
	// (tables).
	HeaderRepeat bool
}
