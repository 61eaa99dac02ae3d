package folio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/folio/model"
)

// ExportFormat defines the available export formats for layout results
type ExportFormat int

const (
	// ExportFormatJSON exports the whole result as one JSON document
	ExportFormatJSON ExportFormat = iota
	// ExportFormatJSONL exports one JSON object per placed element
	ExportFormatJSONL
)

// String returns a human-readable representation of the export format
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSON:
		return "json"
	case ExportFormatJSONL:
		return "jsonl"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSON:
		return ".json"
	case ExportFormatJSONL:
		return ".jsonl"
	default:
		return ".txt"
	}
}

// resultDTO is the serialized form of a LayoutResult, carrying
// everything a rendering backend needs to draw the document.
type resultDTO struct {
	Pages    []pageDTO    `json:"pages"`
	Warnings []warningDTO `json:"warnings,omitempty"`
}

type pageDTO struct {
	ID       string       `json:"id"`
	Index    int          `json:"index"`
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Margins  marginsDTO   `json:"margins"`
	Elements []elementDTO `json:"elements"`
}

type marginsDTO struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type elementDTO struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	PageIndex int           `json:"pageIndex"`
	Bounds    boundsDTO     `json:"bounds"`
	Overflow  bool          `json:"overflow,omitempty"`
	Split     *splitDTO     `json:"split,omitempty"`
	Content   anyContentDTO `json:"content"`
}

type boundsDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type splitDTO struct {
	Part         int  `json:"part"`
	Total        int  `json:"total"`
	Continued    bool `json:"continued,omitempty"`
	Continuation bool `json:"continuation,omitempty"`
}

type warningDTO struct {
	ElementIndex    int     `json:"elementIndex"`
	Reason          string  `json:"reason"`
	ElementHeight   float64 `json:"elementHeight"`
	AvailableHeight float64 `json:"availableHeight"`
}

// anyContentDTO is the type-dependent payload of an element.
type anyContentDTO struct {
	Text     string         `json:"text,omitempty"`
	Level    int            `json:"level,omitempty"`
	Language string         `json:"language,omitempty"`
	Lines    []string       `json:"lines,omitempty"`
	Header   []string       `json:"header,omitempty"`
	Rows     [][]string     `json:"rows,omitempty"`
	Items    []listItemDTO  `json:"items,omitempty"`
	Ordered  bool           `json:"ordered,omitempty"`
	Source   string         `json:"source,omitempty"`
	Alt      string         `json:"alt,omitempty"`
	Segments []latexSpanDTO `json:"segments,omitempty"`
}

type listItemDTO struct {
	Text  string `json:"text"`
	Level int    `json:"level,omitempty"`
}

type latexSpanDTO struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ExportJSON writes the layout result as a single JSON document.
//
// Example:
//
//	result, _, err := folio.FromMarkdown(src).Result()
//	err = folio.ExportJSON(result, os.Stdout)
func ExportJSON(result *model.LayoutResult, w io.Writer) error {
	if result == nil {
		return fmt.Errorf("nil layout result")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildResultDTO(result)); err != nil {
		return fmt.Errorf("encoding layout result: %w", err)
	}
	return nil
}

// ExportJSONL writes one JSON object per placed element, in document
// order, suitable for streaming consumers.
//
// Example:
//
//	result, _, err := folio.FromMarkdown(src).Result()
//	err = folio.ExportJSONL(result, file)
func ExportJSONL(result *model.LayoutResult, w io.Writer) error {
	if result == nil {
		return fmt.Errorf("nil layout result")
	}

	enc := json.NewEncoder(w)
	for i, pl := range result.Elements {
		if err := enc.Encode(buildElementDTO(pl)); err != nil {
			return fmt.Errorf("encoding element %d: %w", i, err)
		}
	}
	return nil
}

// Export writes the layout result in the given format.
func Export(result *model.LayoutResult, w io.Writer, format ExportFormat) error {
	switch format {
	case ExportFormatJSON:
		return ExportJSON(result, w)
	case ExportFormatJSONL:
		return ExportJSONL(result, w)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func buildResultDTO(result *model.LayoutResult) resultDTO {
	dto := resultDTO{
		Pages: make([]pageDTO, 0, len(result.Pages)),
	}

	for _, page := range result.Pages {
		pd := pageDTO{
			ID:     page.ID,
			Index:  page.Index,
			Width:  page.Size.Width,
			Height: page.Size.Height,
			Margins: marginsDTO{
				Top:    page.Margins.Top,
				Right:  page.Margins.Right,
				Bottom: page.Margins.Bottom,
				Left:   page.Margins.Left,
			},
			Elements: make([]elementDTO, 0, len(page.Elements)),
		}
		for _, pl := range page.Elements {
			pd.Elements = append(pd.Elements, buildElementDTO(pl))
		}
		dto.Pages = append(dto.Pages, pd)
	}

	for _, warn := range result.Warnings {
		dto.Warnings = append(dto.Warnings, warningDTO{
			ElementIndex:    warn.ElementIndex,
			Reason:          warn.Reason,
			ElementHeight:   warn.ElementHeight,
			AvailableHeight: warn.AvailableHeight,
		})
	}

	return dto
}

func buildElementDTO(pl model.PlacedElement) elementDTO {
	dto := elementDTO{
		ID:        pl.Element.ID(),
		Type:      pl.Element.Type().String(),
		PageIndex: pl.PageIndex,
		Bounds: boundsDTO{
			X:      pl.Bounds.X,
			Y:      pl.Bounds.Y,
			Width:  pl.Bounds.Width,
			Height: pl.Bounds.Height,
		},
		Overflow: pl.Overflow,
		Content:  buildContentDTO(pl.Element),
	}
	if pl.SplitInfo != nil {
		dto.Split = &splitDTO{
			Part:         pl.SplitInfo.Part,
			Total:        pl.SplitInfo.Total,
			Continued:    pl.SplitInfo.Continued,
			Continuation: pl.SplitInfo.Continuation,
		}
	}
	return dto
}

func buildContentDTO(el model.Element) anyContentDTO {
	switch e := el.(type) {
	case *model.Text:
		return anyContentDTO{Text: e.Content}
	case *model.Heading:
		return anyContentDTO{Text: e.Content, Level: e.Level}
	case *model.Code:
		return anyContentDTO{Lines: e.Lines, Language: e.Language}
	case *model.Table:
		return anyContentDTO{Header: e.Header, Rows: e.Rows}
	case *model.Image:
		return anyContentDTO{Source: e.Source, Alt: e.Alt}
	case *model.Latex:
		dto := anyContentDTO{Text: e.Content}
		for _, span := range e.Style.LatexSegments {
			dto.Segments = append(dto.Segments, latexSpanDTO{Start: span.Start, End: span.End})
		}
		return dto
	case *model.List:
		dto := anyContentDTO{Ordered: e.Ordered}
		for _, item := range e.Items {
			dto.Items = append(dto.Items, listItemDTO{Text: item.Text, Level: item.Level})
		}
		return dto
	default:
		return anyContentDTO{}
	}
}
