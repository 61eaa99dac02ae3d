package folio

import (
	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/layout"
)

// composeOptions holds configuration for a layout pass.
type composeOptions struct {
	// Engine configuration (page geometry, typography, split policy)
	cfg layout.Config

	// Optional custom width measurer; nil means the built-in estimator
	measurer font.Measurer

	// Starting cursor, for appending after already-placed content
	startPage int
	startY    float64 // 0 means the top margin of the start page
}

// defaultOptions returns the default composition options.
func defaultOptions() composeOptions {
	return composeOptions{
		cfg:       layout.DefaultConfig(),
		measurer:  nil,
		startPage: 0,
		startY:    0,
	}
}

// clone creates a deep copy of composeOptions.
func (o composeOptions) clone() composeOptions {
	newOpts := o
	newOpts.cfg = o.cfg.Clone()
	return newOpts
}
