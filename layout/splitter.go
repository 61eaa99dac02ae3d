package layout

import (
	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/model"
)

// ElementSplitter divides elements across page boundaries. Split
// points respect content structure: paragraphs for text, source lines
// for code, rows for tables, items for lists. Images and latex never
// split.
type ElementSplitter struct {
	cfg  Config
	calc *DimensionCalculator
}

// NewElementSplitter creates a splitter sharing the calculator's
// measurements. A nil calculator gets a default one.
func NewElementSplitter(cfg Config, calc *DimensionCalculator) *ElementSplitter {
	if calc == nil {
		calc = NewDimensionCalculator(cfg, nil)
	}
	return &ElementSplitter{cfg: cfg, calc: calc}
}

// Split divides el into a first part that fits within availableHeight
// and a remainder. ok reports whether a split was possible: a refusal
// means the caller should move the whole element to a fresh page.
//
// Both parts keep the original element's ID. The first part drops its
// bottom margin so the page break sits flush.
func (s *ElementSplitter) Split(el model.Element, availableWidth, availableHeight float64) (first, rest model.Element, ok bool) {
	switch e := el.(type) {
	case *model.Text:
		return s.splitText(e, availableWidth, availableHeight)
	case *model.Heading:
		return s.splitHeading(e, availableWidth, availableHeight)
	case *model.Code:
		return s.splitCode(e, availableWidth, availableHeight)
	case *model.Table:
		return s.splitTable(e, availableWidth, availableHeight)
	case *model.List:
		return s.splitList(e, availableWidth, availableHeight)
	default:
		return nil, nil, false
	}
}

// cutParagraphs finds the paragraph boundary for a text split. The
// line budget is what fits in availableHeight less the widow reserve;
// the cut must keep at least orphanLines lines on the current page and
// leave a non-empty remainder.
func (s *ElementSplitter) cutParagraphs(paraLines []int, pitch, availableHeight float64) (cut int, ok bool) {
	if pitch <= 0 {
		return 0, false
	}
	maxLines := int(availableHeight/pitch) - s.cfg.WidowLines
	if maxLines < s.cfg.OrphanLines {
		return 0, false
	}

	accLines := 0
	accHeight := 0.0
	for i, n := range paraLines {
		h := float64(n) * pitch
		if i > 0 {
			h += paragraphGapFactor * pitch
		}
		if accLines+n > maxLines || accHeight+h > availableHeight {
			break
		}
		accLines += n
		accHeight += h
		cut = i + 1
	}

	if cut == 0 || cut == len(paraLines) || accLines < s.cfg.OrphanLines {
		return 0, false
	}
	return cut, true
}

func (s *ElementSplitter) splitText(e *model.Text, availableWidth, availableHeight float64) (model.Element, model.Element, bool) {
	dims := s.calc.Calculate(e, availableWidth)
	if !dims.CanSplit {
		return nil, nil, false
	}

	paras := splitParagraphs(e.Content)
	cut, ok := s.cutParagraphs(dims.SplitHints.ParagraphLines, dims.SplitHints.LineHeight, availableHeight)
	if !ok {
		return nil, nil, false
	}

	firstStyle := e.Style
	firstStyle.MarginBottom = 0
	first := &model.Text{
		ElementID: e.ElementID,
		Content:   joinParagraphs(paras[:cut]),
		Style:     firstStyle,
		ZOrder:    e.ZOrder,
	}
	rest := &model.Text{
		ElementID: e.ElementID,
		Content:   joinParagraphs(paras[cut:]),
		Style:     e.Style,
		ZOrder:    e.ZOrder,
	}
	return first, rest, true
}

func (s *ElementSplitter) splitHeading(e *model.Heading, availableWidth, availableHeight float64) (model.Element, model.Element, bool) {
	dims := s.calc.Calculate(e, availableWidth)
	if !dims.CanSplit {
		return nil, nil, false
	}

	paras := splitParagraphs(e.Content)
	cut, ok := s.cutParagraphs(dims.SplitHints.ParagraphLines, dims.SplitHints.LineHeight, availableHeight)
	if !ok {
		return nil, nil, false
	}

	firstStyle := e.Style
	firstStyle.MarginBottom = 0
	first := &model.Heading{
		ElementID: e.ElementID,
		Content:   joinParagraphs(paras[:cut]),
		Level:     e.Level,
		Style:     firstStyle,
		ZOrder:    e.ZOrder,
	}
	rest := &model.Heading{
		ElementID: e.ElementID,
		Content:   joinParagraphs(paras[cut:]),
		Level:     e.Level,
		Style:     e.Style,
		ZOrder:    e.ZOrder,
	}
	return first, rest, true
}

func (s *ElementSplitter) splitCode(e *model.Code, availableWidth, availableHeight float64) (model.Element, model.Element, bool) {
	dims := s.calc.Calculate(e, availableWidth)
	if !dims.CanSplit {
		return nil, nil, false
	}

	pad := dims.SplitHints.Padding
	pitch := dims.SplitHints.LineHeight
	if pitch <= 0 {
		return nil, nil, false
	}
	maxDisplay := int((availableHeight - 2*pad) / pitch)
	if maxDisplay < s.cfg.OrphanLines {
		return nil, nil, false
	}

	rs := s.calc.resolve(e.Style)
	if e.Style.FontFamily == "" {
		rs.family = "Courier"
	}
	inner := contentWidth(rs, availableWidth) - 2*pad
	limit := font.CharsPerLine(s.calc.metrics, inner, rs.family, rs.size)

	acc := 0
	cut := 0
	for i, line := range e.Lines {
		n := wrappedLineCount(line, limit)
		if acc+n > maxDisplay {
			break
		}
		acc += n
		cut = i + 1
	}
	if cut == 0 || cut == len(e.Lines) || acc < s.cfg.OrphanLines {
		return nil, nil, false
	}

	firstStyle := e.Style
	firstStyle.MarginBottom = 0
	first := &model.Code{
		ElementID: e.ElementID,
		Lines:     append([]string(nil), e.Lines[:cut]...),
		Language:  e.Language,
		Style:     firstStyle,
		ZOrder:    e.ZOrder,
	}
	rest := &model.Code{
		ElementID: e.ElementID,
		Lines:     append([]string(nil), e.Lines[cut:]...),
		Language:  e.Language,
		Style:     e.Style,
		ZOrder:    e.ZOrder,
	}
	return first, rest, true
}

func (s *ElementSplitter) splitTable(e *model.Table, availableWidth, availableHeight float64) (model.Element, model.Element, bool) {
	dims := s.calc.Calculate(e, availableWidth)
	if !dims.CanSplit {
		return nil, nil, false
	}

	budget := availableHeight - dims.SplitHints.HeaderHeight
	acc := 0.0
	cut := 0
	for i, rh := range dims.SplitHints.RowHeights {
		if acc+rh > budget {
			break
		}
		acc += rh
		cut = i + 1
	}
	if cut == 0 || cut >= len(e.Rows) {
		return nil, nil, false
	}

	var restHeader []string
	if dims.SplitHints.HeaderRepeat {
		restHeader = append([]string(nil), e.Header...)
	}

	firstStyle := e.Style
	firstStyle.MarginBottom = 0
	first := &model.Table{
		ElementID: e.ElementID,
		Header:    append([]string(nil), e.Header...),
		Rows:      copyRows(e.Rows[:cut]),
		Style:     firstStyle,
		ZOrder:    e.ZOrder,
	}
	rest := &model.Table{
		ElementID: e.ElementID,
		Header:    restHeader,
		Rows:      copyRows(e.Rows[cut:]),
		Style:     e.Style,
		ZOrder:    e.ZOrder,
	}
	return first, rest, true
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

func (s *ElementSplitter) splitList(e *model.List, availableWidth, availableHeight float64) (model.Element, model.Element, bool) {
	dims := s.calc.Calculate(e, availableWidth)
	if !dims.CanSplit {
		return nil, nil, false
	}

	accHeight := 0.0
	accLines := 0
	cut := 0
	for i, h := range dims.SplitHints.ItemHeights {
		if accHeight+h > availableHeight {
			break
		}
		accHeight += h
		accLines += dims.SplitHints.ItemLines[i]
		cut = i + 1
	}
	if cut == 0 || cut == len(e.Items) || accLines < s.cfg.OrphanLines {
		return nil, nil, false
	}

	firstStyle := e.Style
	firstStyle.MarginBottom = 0
	first := &model.List{
		ElementID: e.ElementID,
		Items:     append([]model.ListItem(nil), e.Items[:cut]...),
		Ordered:   e.Ordered,
		Style:     firstStyle,
		ZOrder:    e.ZOrder,
	}
	rest := &model.List{
		ElementID: e.ElementID,
		Items:     append([]model.ListItem(nil), e.Items[cut:]...),
		Ordered:   e.Ordered,
		Style:     e.Style,
		ZOrder:    e.ZOrder,
	}
	return first, rest, true
}
