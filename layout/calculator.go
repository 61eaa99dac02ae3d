package layout

import (
	"sort"

	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/model"
)

// listIndentStep is the horizontal indent per list nesting level, in points.
const listIndentStep = 18.0

// imageFallbackRatio is the aspect ratio assumed for images with an
// unknown natural size.
const imageFallbackRatio = 4.0 / 3.0

// DimensionCalculator computes element sizes under a given available
// width. Results are ephemeral: the paginator recomputes them per pass,
// and only the width estimator underneath memoizes.
type DimensionCalculator struct {
	cfg     Config
	metrics font.Measurer
}

// NewDimensionCalculator creates a calculator over the given measurer.
// A nil measurer gets the built-in heuristic estimator.
func NewDimensionCalculator(cfg Config, m font.Measurer) *DimensionCalculator {
	if m == nil {
		m = font.NewEstimator()
	}
	return &DimensionCalculator{cfg: cfg, metrics: m}
}

// Calculate computes the dimensions of one element at the available
// width. Malformed elements yield a safe minimal fallback, never an
// error: a layout pass must always complete.
func (c *DimensionCalculator) Calculate(el model.Element, availableWidth float64) model.Dimensions {
	switch e := el.(type) {
	case *model.Text:
		return c.measureText(e.Content, e.Style, availableWidth, model.ElementTypeText, 1.0)
	case *model.Heading:
		return c.measureText(e.Content, e.Style, availableWidth, model.ElementTypeHeading, c.cfg.headingRatio(e.Level))
	case *model.Code:
		return c.measureCode(e, availableWidth)
	case *model.Table:
		return c.measureTable(e, availableWidth)
	case *model.Image:
		return c.measureImage(e, availableWidth)
	case *model.Latex:
		return c.measureLatex(e, availableWidth)
	case *model.List:
		return c.measureList(e, availableWidth)
	default:
		return c.fallback(el, availableWidth)
	}
}

// resolvedStyle is a Style with defaults applied from the config
type resolvedStyle struct {
	family       string
	size         float64
	lineHeight   float64
	align        model.TextAlignment
	marginBottom float64
	width        float64
}

// pitch returns the line pitch in points
func (rs resolvedStyle) pitch() float64 {
	return rs.size * rs.lineHeight
}

// resolve fills unset style fields from the configuration defaults
func (c *DimensionCalculator) resolve(st model.Style) resolvedStyle {
	rs := resolvedStyle{
		family:       st.FontFamily,
		size:         st.FontSize,
		lineHeight:   st.LineHeight,
		align:        st.TextAlign,
		marginBottom: st.MarginBottom,
		width:        st.Width,
	}
	if rs.family == "" {
		rs.family = c.cfg.DefaultFontFamily
	}
	if rs.size <= 0 {
		rs.size = c.cfg.DefaultFontSize
	}
	if rs.lineHeight <= 0 {
		rs.lineHeight = c.cfg.DefaultLineHeight
	}
	return rs
}

// contentWidth applies a style width cap to the available width
func contentWidth(rs resolvedStyle, available float64) float64 {
	if rs.width > 0 && rs.width < available {
		return rs.width
	}
	return available
}

// measureText implements the shared text algorithm: paragraphs split on
// blank lines, words greedily wrapped at the character budget, long
// words force-chunked. sizeScale carries the heading multiplier.
func (c *DimensionCalculator) measureText(content string, st model.Style, available float64, ct model.ElementType, sizeScale float64) model.Dimensions {
	rs := c.resolve(st)
	rs.size *= sizeScale

	w := contentWidth(rs, available)
	limit := font.CharsPerLine(c.metrics, w, rs.family, rs.size)
	pitch := rs.pitch()

	paragraphs := splitParagraphs(content)
	paraLines := make([]int, len(paragraphs))
	total := 0
	for i, p := range paragraphs {
		n := lineCount(p, limit)
		paraLines[i] = n
		total += n
	}

	height := float64(total)*pitch +
		float64(len(paragraphs)-1)*paragraphGapFactor*pitch +
		rs.marginBottom

	return model.Dimensions{
		Width:       w,
		Height:      height,
		LineCount:   total,
		CanSplit:    total > c.cfg.OrphanLines,
		ContentType: ct,
		SplitHints: model.SplitHints{
			LineHeight:     pitch,
			ParagraphLines: paraLines,
		},
	}
}

// measureCode measures a code block: monospace, fixed padding on all
// sides, source lines preserved with only overlong lines wrapping.
func (c *DimensionCalculator) measureCode(e *model.Code, available float64) model.Dimensions {
	rs := c.resolve(e.Style)
	if e.Style.FontFamily == "" {
		rs.family = "Courier"
	}

	pad := c.cfg.CodeBlockPadding
	w := contentWidth(rs, available)
	inner := w - 2*pad
	limit := font.CharsPerLine(c.metrics, inner, rs.family, rs.size)
	pitch := rs.pitch()

	total := 0
	for _, line := range e.Lines {
		total += wrappedLineCount(line, limit)
	}
	if total == 0 {
		total = 1
	}

	height := float64(total)*pitch + 2*pad + rs.marginBottom

	return model.Dimensions{
		Width:       w,
		Height:      height,
		LineCount:   total,
		CanSplit:    total > c.cfg.OrphanLines,
		ContentType: model.ElementTypeCode,
		SplitHints: model.SplitHints{
			LineHeight: pitch,
			Padding:    pad,
		},
	}
}

// measureTable measures a table with evenly divided columns and
// character-wrapped cells. A table with no columns degrades to a
// one-line fallback.
func (c *DimensionCalculator) measureTable(e *model.Table, available float64) model.Dimensions {
	rs := c.resolve(e.Style)
	cols := e.ColCount()
	if cols == 0 {
		return c.fallback(e, available)
	}

	w := contentWidth(rs, available)
	colWidth := w / float64(cols)
	cellInner := colWidth - 2*c.cfg.TableCellPadding
	limit := font.CharsPerLine(c.metrics, cellInner, rs.family, rs.size)
	pitch := rs.pitch()

	rowHeight := func(cells []string) (float64, int) {
		lines := 1
		for _, cell := range cells {
			if n := lineCount(cell, limit); n > lines {
				lines = n
			}
		}
		return float64(lines)*pitch + 2*c.cfg.TableCellPadding, lines
	}

	var headerHeight float64
	totalLines := 0
	if len(e.Header) > 0 {
		h, lines := rowHeight(e.Header)
		headerHeight = h
		totalLines += lines
	}

	rowHeights := make([]float64, len(e.Rows))
	height := headerHeight
	for i, row := range e.Rows {
		h, lines := rowHeight(row)
		rowHeights[i] = h
		height += h
		totalLines += lines
	}
	height += rs.marginBottom

	return model.Dimensions{
		Width:       w,
		Height:      height,
		LineCount:   totalLines,
		CanSplit:    len(e.Rows) > 2,
		ContentType: model.ElementTypeTable,
		SplitHints: model.SplitHints{
			LineHeight:   pitch,
			HeaderHeight: headerHeight,
			RowHeights:   rowHeights,
			HeaderRepeat: c.cfg.TableHeaderRepeat,
		},
	}
}

// measureImage sizes an image by its natural aspect ratio, capped to
// the available width. Images never split.
func (c *DimensionCalculator) measureImage(e *model.Image, available float64) model.Dimensions {
	rs := c.resolve(e.Style)

	w := e.NaturalWidth
	if rs.width > 0 {
		w = rs.width
	}
	if w <= 0 || w > available {
		w = available
	}

	ratio := e.AspectRatio()
	if ratio <= 0 {
		ratio = imageFallbackRatio
	}
	height := w/ratio + rs.marginBottom

	return model.Dimensions{
		Width:       w,
		Height:      height,
		CanSplit:    false,
		ContentType: model.ElementTypeImage,
	}
}

// measureLatex measures mixed text and math. Math runs are marked by
// the style's segments; with no segments the whole content is one math
// run. Each math run occupies one line scaled by its complexity. Latex
// elements never split.
func (c *DimensionCalculator) measureLatex(e *model.Latex, available float64) model.Dimensions {
	rs := c.resolve(e.Style)
	w := contentWidth(rs, available)
	pitch := rs.pitch()

	spans := validSpans(e.Style.LatexSegments, len(e.Content))
	if len(spans) == 0 {
		spans = []model.LatexSpan{{Start: 0, End: len(e.Content)}}
	}

	limit := font.CharsPerLine(c.metrics, w, rs.family, rs.size)

	height := 0.0
	lines := 0
	pos := 0
	measureTextRun := func(run string) {
		for _, p := range splitParagraphs(run) {
			n := lineCount(p, limit)
			lines += n
			height += float64(n) * pitch
		}
	}

	for _, span := range spans {
		if span.Start > pos {
			measureTextRun(e.Content[pos:span.Start])
		}
		height += pitch * complexityScale(e.Content[span.Start:span.End])
		lines++
		pos = span.End
	}
	if pos < len(e.Content) {
		measureTextRun(e.Content[pos:])
	}

	if lines == 0 {
		lines = 1
		height = pitch
	}
	height += rs.marginBottom

	return model.Dimensions{
		Width:       w,
		Height:      height,
		LineCount:   lines,
		CanSplit:    false,
		ContentType: model.ElementTypeLatex,
		SplitHints: model.SplitHints{
			LineHeight: pitch,
		},
	}
}

// validSpans filters and orders math spans against the content length
func validSpans(spans []model.LatexSpan, n int) []model.LatexSpan {
	var out []model.LatexSpan
	for _, s := range spans {
		if s.Valid(n) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	// Drop overlapping spans, keeping the earlier one.
	kept := out[:0]
	end := 0
	for _, s := range out {
		if s.Start < end {
			continue
		}
		kept = append(kept, s)
		end = s.End
	}
	return kept
}

// measureList measures each item with the text algorithm at the width
// remaining after its nesting indent.
func (c *DimensionCalculator) measureList(e *model.List, available float64) model.Dimensions {
	rs := c.resolve(e.Style)
	w := contentWidth(rs, available)
	pitch := rs.pitch()

	if len(e.Items) == 0 {
		return c.fallback(e, available)
	}

	itemHeights := make([]float64, len(e.Items))
	itemLines := make([]int, len(e.Items))
	totalLines := 0
	height := 0.0
	for i, item := range e.Items {
		indent := listIndentStep * float64(item.Level+1)
		itemWidth := w - indent
		if itemWidth < listIndentStep {
			itemWidth = listIndentStep
		}
		limit := font.CharsPerLine(c.metrics, itemWidth, rs.family, rs.size)
		n := lineCount(item.Text, limit)
		itemLines[i] = n
		itemHeights[i] = float64(n) * pitch
		totalLines += n
		height += itemHeights[i]
	}
	height += rs.marginBottom

	return model.Dimensions{
		Width:       w,
		Height:      height,
		LineCount:   totalLines,
		CanSplit:    totalLines > c.cfg.OrphanLines,
		ContentType: model.ElementTypeList,
		SplitHints: model.SplitHints{
			LineHeight:  pitch,
			ItemHeights: itemHeights,
			ItemLines:   itemLines,
		},
	}
}

// fallback returns a safe minimal one-line box for malformed or unknown
// elements.
func (c *DimensionCalculator) fallback(el model.Element, available float64) model.Dimensions {
	rs := c.resolve(styleOf(el))
	return model.Dimensions{
		Width:       contentWidth(rs, available),
		Height:      rs.pitch() + rs.marginBottom,
		LineCount:   1,
		CanSplit:    false,
		ContentType: el.Type(),
		SplitHints: model.SplitHints{
			LineHeight: rs.pitch(),
		},
	}
}

// styleOf extracts the style from any concrete element type
func styleOf(el model.Element) model.Style {
	switch e := el.(type) {
	case *model.Text:
		return e.Style
	case *model.Heading:
		return e.Style
	case *model.Code:
		return e.Style
	case *model.Table:
		return e.Style
	case *model.Image:
		return e.Style
	case *model.Latex:
		return e.Style
	case *model.List:
		return e.Style
	default:
		return model.Style{}
	}
}
