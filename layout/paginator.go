package layout

import (
	"fmt"

	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/model"
)

// layoutEpsilon absorbs float drift in fit comparisons so an element
// measured to exactly the remaining space still places.
const layoutEpsilon = 1e-6

// overflowReason is the warning text attached to force-placed elements.
const overflowReason = "Element too large for page"

// Paginator flows elements onto pages. For each element it tries, in
// order: place in the remaining space, split across the page break,
// move whole to a fresh page. An element too large even for an empty
// page is force-placed with Overflow set and a warning recorded, so a
// pass always terminates with every element placed exactly once.
type Paginator struct {
	cfg   Config
	calc  *DimensionCalculator
	split *ElementSplitter
}

// NewPaginator creates a paginator with the built-in width estimator.
func NewPaginator(cfg Config) *Paginator {
	return NewPaginatorWith(cfg, nil)
}

// NewPaginatorWith creates a paginator over a custom measurer, for
// callers with real font metrics. A nil measurer gets the heuristic
// estimator.
func NewPaginatorWith(cfg Config, m font.Measurer) *Paginator {
	calc := NewDimensionCalculator(cfg, m)
	return &Paginator{
		cfg:   cfg,
		calc:  calc,
		split: NewElementSplitter(cfg, calc),
	}
}

// Calculator returns the paginator's dimension calculator.
func (p *Paginator) Calculator() *DimensionCalculator { return p.calc }

// Layout flows elements onto pages starting from the top of page zero.
func (p *Paginator) Layout(elements []model.Element) (*model.LayoutResult, error) {
	return p.LayoutFrom(elements, 0, p.cfg.Margins.Top)
}

// LayoutFrom flows elements starting at the given page index and
// vertical offset, for resuming after already-placed content.
func (p *Paginator) LayoutFrom(elements []model.Element, startPage int, startY float64) (*model.LayoutResult, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout config: %w", err)
	}
	if startPage < 0 {
		startPage = 0
	}
	if startY < p.cfg.Margins.Top {
		startY = p.cfg.Margins.Top
	}

	f := &flow{
		p:         p,
		startPage: startPage,
		pageIndex: startPage,
		maxPage:   startPage,
		y:         startY,
	}

	for idx, el := range elements {
		f.flowElement(idx, el)
	}

	return f.result(), nil
}

// flow holds the cursor state of one layout pass. Placements
// accumulate in a flat list and pages are materialized at the end.
type flow struct {
	p          *Paginator
	placements []model.PlacedElement
	warnings   []model.Warning
	startPage  int
	pageIndex  int
	maxPage    int
	y          float64
}

func (f *flow) contentBottom() float64 {
	return f.p.cfg.PageHeight - f.p.cfg.Margins.Bottom
}

func (f *flow) remaining() float64 {
	return f.contentBottom() - f.y
}

func (f *flow) onFreshPage() bool {
	return f.remaining() >= f.p.cfg.ContentHeight()-layoutEpsilon
}

func (f *flow) newPage() {
	f.pageIndex++
	if f.pageIndex > f.maxPage {
		f.maxPage = f.pageIndex
	}
	f.y = f.p.cfg.Margins.Top
}

// flowElement places one input element, splitting or advancing pages
// as needed. It patches SplitInfo onto the parts once the element has
// fully landed.
func (f *flow) flowElement(idx int, el model.Element) {
	start := len(f.placements)
	contentWidth := f.p.cfg.ContentWidth()
	dims := f.p.calc.Calculate(el, contentWidth)

	for {
		remaining := f.remaining()

		if dims.Height <= remaining+layoutEpsilon {
			f.place(el, dims, false)
			break
		}

		if dims.CanSplit && remaining > f.p.minSplitHeight(dims) {
			if first, rest, ok := f.p.split.Split(el, contentWidth, remaining); ok {
				firstDims := f.p.calc.Calculate(first, contentWidth)
				f.place(first, firstDims, false)
				f.newPage()
				el = rest
				dims = f.p.calc.Calculate(rest, contentWidth)
				continue
			}
		}

		if f.onFreshPage() {
			f.warnings = append(f.warnings, model.Warning{
				ElementIndex:    idx,
				Reason:          overflowReason,
				ElementHeight:   dims.Height,
				AvailableHeight: remaining,
			})
			f.place(el, dims, true)
			break
		}

		f.newPage()
	}

	if n := len(f.placements) - start; n > 1 {
		for i := 0; i < n; i++ {
			f.placements[start+i].SplitInfo = &model.SplitInfo{
				Part:         i + 1,
				Total:        n,
				Continued:    i < n-1,
				Continuation: i > 0,
			}
		}
	}
}

func (f *flow) place(el model.Element, dims model.Dimensions, overflow bool) {
	f.placements = append(f.placements, model.PlacedElement{
		Element: el,
		Bounds: model.BBox{
			X:      f.alignX(el, dims),
			Y:      f.y,
			Width:  dims.Width,
			Height: dims.Height,
		},
		PageIndex: f.pageIndex,
		Overflow:  overflow,
	})
	f.y += dims.Height
}

// alignX positions elements narrower than the content box according
// to their text alignment.
func (f *flow) alignX(el model.Element, dims model.Dimensions) float64 {
	left := f.p.cfg.Margins.Left
	slack := f.p.cfg.ContentWidth() - dims.Width
	if slack <= 0 {
		return left
	}
	switch styleOf(el).TextAlign {
	case model.AlignCenter:
		return left + slack/2
	case model.AlignRight:
		return left + slack
	default:
		return left
	}
}

// minSplitHeight is the least space in which splitting an element is
// worth attempting: below it the splitter would refuse anyway.
func (p *Paginator) minSplitHeight(dims model.Dimensions) float64 {
	h := dims.SplitHints
	switch dims.ContentType {
	case model.ElementTypeText, model.ElementTypeHeading, model.ElementTypeList:
		return float64(p.cfg.OrphanLines) * h.LineHeight
	case model.ElementTypeCode:
		return float64(p.cfg.OrphanLines)*h.LineHeight + 2*h.Padding
	case model.ElementTypeTable:
		min := h.HeaderHeight
		if len(h.RowHeights) > 0 {
			min += h.RowHeights[0]
		}
		return min
	default:
		return dims.Height
	}
}

// result materializes pages from the flat placement list. The page
// range runs from the start page through the last page touched, so an
// empty input still yields one page.
func (f *flow) result() *model.LayoutResult {
	size := f.p.cfg.PageSize()
	pages := make([]*model.Page, 0, f.maxPage-f.startPage+1)
	for i := f.startPage; i <= f.maxPage; i++ {
		pages = append(pages, model.NewPage(i, size, f.p.cfg.Margins))
	}
	for _, pl := range f.placements {
		pages[pl.PageIndex-f.startPage].AddElement(pl)
	}

	return &model.LayoutResult{
		Pages:    pages,
		Elements: f.placements,
		Warnings: f.warnings,
	}
}
