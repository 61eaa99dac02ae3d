package folio

import (
	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// Composer provides a fluent interface for configuring and running a
// layout pass. Each configuration method returns a new Composer
// instance, making it safe for concurrent use and allowing method
// chaining.
type Composer struct {
	// Classified input, in document order
	elements []model.Element

	// Configuration
	options composeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Composer with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Composer) clone() *Composer {
	return &Composer{
		elements: c.elements,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Composer instance)
// ============================================================================

// WithConfig replaces the entire engine configuration.
//
// Example:
//
//	cfg, err := layout.LoadConfig("layout.yaml")
//	result, warnings, err := folio.FromMarkdown(src).WithConfig(cfg).Result()
func (c *Composer) WithConfig(cfg layout.Config) *Composer {
	newComp := c.clone()
	newComp.options.cfg = cfg.Clone()
	return newComp
}

// WithMeasurer substitutes a custom character-width measurer, for
// callers with real font metrics.
func (c *Composer) WithMeasurer(m font.Measurer) *Composer {
	newComp := c.clone()
	newComp.options.measurer = m
	return newComp
}

// PageSize sets the page dimensions.
//
// Example:
//
//	result, _, err := folio.FromMarkdown(src).PageSize(model.Letter).Result()
func (c *Composer) PageSize(size model.PageSize) *Composer {
	newComp := c.clone()
	newComp.options.cfg.PageWidth = size.Width
	newComp.options.cfg.PageHeight = size.Height
	return newComp
}

// Margins sets the page margins.
//
// Example:
//
//	result, _, err := folio.FromMarkdown(src).
//	    Margins(model.UniformMargins(54)).
//	    Result()
func (c *Composer) Margins(m model.Margins) *Composer {
	newComp := c.clone()
	newComp.options.cfg.Margins = m
	return newComp
}

// FontSize sets the default font size in points, applied where element
// styles leave it unset.
func (c *Composer) FontSize(size float64) *Composer {
	newComp := c.clone()
	newComp.options.cfg.DefaultFontSize = size
	return newComp
}

// FontFamily sets the default font family, applied where element
// styles leave it unset.
func (c *Composer) FontFamily(family string) *Composer {
	newComp := c.clone()
	newComp.options.cfg.DefaultFontFamily = family
	return newComp
}

// LineHeight sets the default line height multiplier.
func (c *Composer) LineHeight(lh float64) *Composer {
	newComp := c.clone()
	newComp.options.cfg.DefaultLineHeight = lh
	return newComp
}

// OrphanLines sets the minimum line count that must stay at the bottom
// of a page when a text element splits.
func (c *Composer) OrphanLines(n int) *Composer {
	newComp := c.clone()
	newComp.options.cfg.OrphanLines = n
	return newComp
}

// WidowLines sets the minimum line count that must carry over to the
// next page when a text element splits.
func (c *Composer) WidowLines(n int) *Composer {
	newComp := c.clone()
	newComp.options.cfg.WidowLines = n
	return newComp
}

// StartAt positions the layout cursor before the first element, for
// appending one document after another. The page index is 0-based; a
// y of 0 means the page's top margin.
//
// Example:
//
//	front, _, _ := folio.FromMarkdown(toc).Result()
//	last := front.Pages[front.PageCount()-1]
//	body, _, err := folio.FromMarkdown(chapters).
//	    StartAt(front.PageCount(), 0).
//	    Result()
//	_ = last
func (c *Composer) StartAt(page int, y float64) *Composer {
	newComp := c.clone()
	newComp.options.startPage = page
	newComp.options.startY = y
	return newComp
}

// ============================================================================
// Terminal Operations (execute layout and return results)
// ============================================================================

// Result runs the layout pass and returns the complete result: pages
// of placed elements, the flat placement list, and any warnings.
//
// Warnings indicate non-fatal issues (e.g., an element too large for
// any page was force-placed) where layout succeeded but the output may
// be imperfect.
//
// Example:
//
//	result, warnings, err := folio.FromMarkdown(src).Result()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
func (c *Composer) Result() (*model.LayoutResult, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	paginator := layout.NewPaginatorWith(c.options.cfg, c.options.measurer)

	startY := c.options.startY
	if startY <= 0 {
		startY = c.options.cfg.Margins.Top
	}

	result, err := paginator.LayoutFrom(c.elements, c.options.startPage, startY)
	if err != nil {
		return nil, nil, err
	}
	return result, result.Warnings, nil
}

// Pages runs the layout pass and returns just the pages.
//
// Example:
//
//	pages, warnings, err := folio.FromMarkdown(src).Pages()
//	for _, page := range pages {
//	    fmt.Printf("page %d: %d elements\n", page.Index+1, len(page.Elements))
//	}
func (c *Composer) Pages() ([]*model.Page, []Warning, error) {
	result, warnings, err := c.Result()
	if err != nil {
		return nil, warnings, err
	}
	return result.Pages, warnings, nil
}

// Elements runs the layout pass and returns the flat placement list in
// document order.
func (c *Composer) Elements() ([]model.PlacedElement, []Warning, error) {
	result, warnings, err := c.Result()
	if err != nil {
		return nil, warnings, err
	}
	return result.Elements, warnings, nil
}

// PageCount runs the layout pass and returns the number of pages the
// content occupies.
//
// Example:
//
//	count, err := folio.FromMarkdown(src).PageCount()
func (c *Composer) PageCount() (int, error) {
	result, _, err := c.Result()
	if err != nil {
		return 0, err
	}
	return result.PageCount(), nil
}
