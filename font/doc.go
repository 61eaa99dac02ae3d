// Package font estimates character widths for layout calculations.
//
// The estimates are deliberate approximations: a font family is classified
// as monospace, serif, or sans by keyword matching, and each class maps to
// a fixed average advance width (0.60, 0.55, and 0.58 em respectively).
// True glyph metrics are the rendering backend's concern; this package only
// needs to be accurate enough for line-count and page-break estimation.
//
// # Measuring
//
// The [Estimator] memoizes widths by (family, size) and is safe for
// concurrent use:
//
//	est := font.NewEstimator()
//	w := est.AverageCharWidth("Georgia", 12)   // ≈ 6.6
//	n := font.CharsPerLine(est, 450, "Georgia", 12)
//
// # Substituting real metrics
//
// The layout engine depends on the [Measurer] interface rather than on
// [Estimator], so a measurer backed by real font files can be swapped in
// without touching pagination.
//
// # Wide characters
//
// [TextCells] and [RuneCells] approximate display width for mixed-script
// text: East Asian wide and fullwidth runes count as two average
// characters, combining marks as zero.
package font
