package layout

import (
	"math"
	"testing"
)

func TestComplexityScale(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want float64
	}{
		{"plain", "a + b = c", 1.0},
		{"fraction", `\frac{a}{b}`, 1.6},
		{"display fraction", `\dfrac{a}{b}`, 1.6},
		{"binomial", `\binom{n}{k}`, 1.6},
		{"matrix", `\begin{pmatrix} a & b \\ c & d \end{pmatrix}`, 2.2},
		{"cases", `\begin{cases} 1 \\ 0 \end{cases}`, 2.2},
		{"integral", `\int_a^b f(x) dx`, 1.4 * 1.2},
		{"sum", `\sum_{i=1}^n i`, 1.5 * 1.2},
		{"product", `\prod_i x_i`, 1.5 * 1.2},
		{"root", `\sqrt{2}`, 1.2},
		{"superscript", "x^2", 1.2},
		{"subscript", "x_i", 1.2},
		{"fraction in matrix", `\begin{bmatrix} \frac{1}{2} \end{bmatrix}`, 1.6 * 2.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := complexityScale(tt.src)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected scale %g for %q, got %g", tt.want, tt.src, got)
			}
		})
	}
}

func TestComplexityScale_Compounds(t *testing.T) {
	src := `\int_0^1 \frac{\sqrt{x}}{2} dx`
	want := 1.4 * 1.6 * 1.2 * 1.2 // integral, fraction, root, superscript
	if got := complexityScale(src); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected compound scale %g, got %g", want, got)
	}
}
