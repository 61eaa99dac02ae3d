package layout

import (
	"fmt"
	"os"

	"github.com/tsawler/folio/model"
	"gopkg.in/yaml.v3"
)

// Config holds the geometry and typography settings for one layout pass.
type Config struct {
	// Page geometry in points
	PageWidth  float64       `yaml:"pageWidth"`
	PageHeight float64       `yaml:"pageHeight"`
	Margins    model.Margins `yaml:"margins"`

	// Typography defaults, applied where element styles leave fields unset
	DefaultFontSize   float64 `yaml:"defaultFontSize"`
	DefaultLineHeight float64 `yaml:"defaultLineHeight"`
	DefaultFontFamily string  `yaml:"defaultFontFamily"`

	// Split policy
	OrphanLines int `yaml:"orphanLines"`
	WidowLines  int `yaml:"widowLines"`

	// Block spacing
	CodeBlockPadding float64 `yaml:"codeBlockPadding"`
	TableCellPadding float64 `yaml:"tableCellPadding"`

	// TableHeaderRepeat controls whether table continuation chunks
	// repeat the header row.
	TableHeaderRepeat bool `yaml:"tableHeaderRepeat"`

	// HeadingSizeRatios maps heading levels to font size multipliers
	// relative to the element's font size.
	HeadingSizeRatios map[int]float64 `yaml:"headingSizeRatios"`
}

// DefaultConfig returns the default engine configuration: A4 portrait,
// one-inch margins, 12pt type at 1.4 line height.
func DefaultConfig() Config {
	return Config{
		PageWidth:         model.A4.Width,
		PageHeight:        model.A4.Height,
		Margins:           model.UniformMargins(72),
		DefaultFontSize:   12,
		DefaultLineHeight: 1.4,
		DefaultFontFamily: "Helvetica",
		OrphanLines:       2,
		WidowLines:        2,
		CodeBlockPadding:  8,
		TableCellPadding:  4,
		TableHeaderRepeat: true,
		HeadingSizeRatios: map[int]float64{
			1: 1.8,
			2: 1.5,
			3: 1.3,
			4: 1.15,
			5: 1.1,
			6: 1.05,
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults, so absent
// keys keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration
func (c Config) Clone() Config {
	clone := c
	if c.HeadingSizeRatios != nil {
		clone.HeadingSizeRatios = make(map[int]float64, len(c.HeadingSizeRatios))
		for level, ratio := range c.HeadingSizeRatios {
			clone.HeadingSizeRatios[level] = ratio
		}
	}
	return clone
}

// Validate reports configuration problems. The engine itself assumes
// positive geometry; callers should validate before laying out.
func (c Config) Validate() error {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return fmt.Errorf("page size must be positive, got %gx%g", c.PageWidth, c.PageHeight)
	}
	if c.Margins.Top < 0 || c.Margins.Right < 0 || c.Margins.Bottom < 0 || c.Margins.Left < 0 {
		return fmt.Errorf("margins must not be negative, got %+v", c.Margins)
	}
	if c.ContentWidth() <= 0 {
		return fmt.Errorf("margins leave no horizontal content space on a %gpt page", c.PageWidth)
	}
	if c.ContentHeight() <= 0 {
		return fmt.Errorf("margins leave no vertical content space on a %gpt page", c.PageHeight)
	}
	if c.DefaultFontSize <= 0 {
		return fmt.Errorf("default font size must be positive, got %g", c.DefaultFontSize)
	}
	if c.DefaultLineHeight <= 0 {
		return fmt.Errorf("default line height must be positive, got %g", c.DefaultLineHeight)
	}
	if c.OrphanLines < 1 || c.WidowLines < 1 {
		return fmt.Errorf("orphan and widow minimums must be at least 1, got %d and %d", c.OrphanLines, c.WidowLines)
	}
	return nil
}

// PageSize returns the configured page dimensions
func (c Config) PageSize() model.PageSize {
	return model.PageSize{Width: c.PageWidth, Height: c.PageHeight}
}

// ContentWidth returns the usable width between the side margins
func (c Config) ContentWidth() float64 {
	return c.PageWidth - c.Margins.Horizontal()
}

// ContentHeight returns the usable height between the top and bottom margins
func (c Config) ContentHeight() float64 {
	return c.PageHeight - c.Margins.Vertical()
}

// headingRatio returns the font size multiplier for a heading level,
// clamped to the 1-6 range.
func (c Config) headingRatio(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	if r, ok := c.HeadingSizeRatios[level]; ok && r > 0 {
		return r
	}
	return 1.0
}
