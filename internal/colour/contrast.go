package colour

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.x.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
//
// The calculation runs on the full-precision float components so the
// contrast solver can bisect lightness without quantisation noise.
func Luminance(c colorful.Color) float64 {
	r := gammaCorrect(c.R)
	g := gammaCorrect(c.G)
	b := gammaCorrect(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.x. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). WCAG AA requires 4.5:1 for normal text and
// 3:1 for large text.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 colorful.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
