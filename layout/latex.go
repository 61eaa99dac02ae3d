package layout

import "strings"

// Height multipliers for math constructs. Each detected construct
// contributes its factor independently; a fraction inside a matrix
// scales by both. These are calibrated guesses, not measurements of
// rendered output - kept stable for predictable pagination.
const (
	fractionFactor  = 1.6
	matrixFactor    = 2.2
	integralFactor  = 1.4
	sumFactor       = 1.5
	rootFactor      = 1.2
	subscriptFactor = 1.2
)

// complexityScale returns the height multiplier for one math run.
// A plain run scales by 1.0.
func complexityScale(src string) float64 {
	scale := 1.0

	if strings.Contains(src, "\\frac") || strings.Contains(src, "\\dfrac") ||
		strings.Contains(src, "\\cfrac") || strings.Contains(src, "\\binom") {
		scale *= fractionFactor
	}
	if strings.Contains(src, "matrix") || strings.Contains(src, "\\begin{array}") ||
		strings.Contains(src, "\\begin{cases}") {
		scale *= matrixFactor
	}
	if strings.Contains(src, "\\int") || strings.Contains(src, "\\oint") {
		scale *= integralFactor
	}
	if strings.Contains(src, "\\sum") || strings.Contains(src, "\\prod") {
		scale *= sumFactor
	}
	if strings.Contains(src, "\\sqrt") {
		scale *= rootFactor
	}
	if strings.ContainsAny(src, "^_") {
		scale *= subscriptFactor
	}
	return scale
}
