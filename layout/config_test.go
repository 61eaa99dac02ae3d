package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PageWidth != 595 || cfg.PageHeight != 842 {
		t.Errorf("Expected A4 page, got %gx%g", cfg.PageWidth, cfg.PageHeight)
	}
	if cfg.Margins.Top != 72 || cfg.Margins.Left != 72 {
		t.Errorf("Expected one-inch margins, got %+v", cfg.Margins)
	}
	if cfg.DefaultFontSize != 12 {
		t.Errorf("Expected default font size 12, got %g", cfg.DefaultFontSize)
	}
	if cfg.DefaultLineHeight != 1.4 {
		t.Errorf("Expected default line height 1.4, got %g", cfg.DefaultLineHeight)
	}
	if cfg.DefaultFontFamily != "Helvetica" {
		t.Errorf("Expected Helvetica default, got %q", cfg.DefaultFontFamily)
	}
	if cfg.OrphanLines != 2 || cfg.WidowLines != 2 {
		t.Errorf("Expected orphan/widow minimums of 2, got %d and %d", cfg.OrphanLines, cfg.WidowLines)
	}
	if !cfg.TableHeaderRepeat {
		t.Error("Expected table header repeat on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfig_ContentBox(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.ContentWidth(); got != 595-144 {
		t.Errorf("Expected content width %g, got %g", 595.0-144, got)
	}
	if got := cfg.ContentHeight(); got != 842-144 {
		t.Errorf("Expected content height %g, got %g", 842.0-144, got)
	}
	if size := cfg.PageSize(); size.Width != cfg.PageWidth || size.Height != cfg.PageHeight {
		t.Errorf("Expected page size to echo config, got %+v", size)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	data := []byte("pageWidth: 612\npageHeight: 792\norphanLines: 3\ntableHeaderRepeat: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}

	if cfg.PageWidth != 612 || cfg.PageHeight != 792 {
		t.Errorf("Expected letter page from file, got %gx%g", cfg.PageWidth, cfg.PageHeight)
	}
	if cfg.OrphanLines != 3 {
		t.Errorf("Expected orphanLines 3 from file, got %d", cfg.OrphanLines)
	}
	if cfg.TableHeaderRepeat {
		t.Error("Expected tableHeaderRepeat false from file")
	}

	// Keys absent from the file keep their defaults.
	if cfg.DefaultFontFamily != "Helvetica" {
		t.Errorf("Expected default font family to survive, got %q", cfg.DefaultFontFamily)
	}
	if cfg.WidowLines != 2 {
		t.Errorf("Expected default widowLines to survive, got %d", cfg.WidowLines)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("Expected a reading error, got %v", err)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("pageWidth: [not a number\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected an error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("Expected a parsing error, got %v", err)
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.HeadingSizeRatios[1] = 9.9
	clone.PageWidth = 100

	if cfg.HeadingSizeRatios[1] == 9.9 {
		t.Error("Expected clone's ratio map to be independent")
	}
	if cfg.PageWidth == 100 {
		t.Error("Expected clone's scalars to be independent")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero page", func(c *Config) { c.PageWidth = 0 }, "page size"},
		{"negative margin", func(c *Config) { c.Margins.Top = -1 }, "margins"},
		{"margins exceed width", func(c *Config) { c.Margins.Left = 300; c.Margins.Right = 300 }, "horizontal"},
		{"margins exceed height", func(c *Config) { c.Margins.Top = 500; c.Margins.Bottom = 500 }, "vertical"},
		{"zero font size", func(c *Config) { c.DefaultFontSize = 0 }, "font size"},
		{"zero line height", func(c *Config) { c.DefaultLineHeight = 0 }, "line height"},
		{"zero orphan", func(c *Config) { c.OrphanLines = 0 }, "orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestConfig_HeadingRatio(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.8},
		{2, 1.5},
		{6, 1.05},
		{0, 1.8},  // clamped up
		{9, 1.05}, // clamped down
	}

	for _, tt := range tests {
		if got := cfg.headingRatio(tt.level); got != tt.want {
			t.Errorf("Expected ratio %g for level %d, got %g", tt.want, tt.level, got)
		}
	}

	cfg.HeadingSizeRatios = nil
	if got := cfg.headingRatio(2); got != 1.0 {
		t.Errorf("Expected fallback ratio 1.0 with no map, got %g", got)
	}
}
