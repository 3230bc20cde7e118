// Package colour provides OKLCH colour-space conversion, WCAG contrast
// evaluation and perceptually uniform scale generation.
package colour

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// OKLCH represents a colour in the OKLCH colour space.
// L is lightness in [0, 1], C is chroma (>= 0, in-gamut sRGB tops out
// around 0.37), H is hue in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// achromaticChroma is the chroma below which a colour is treated as
// achromatic and its hue reported as 0.
const achromaticChroma = 1e-4

// HexToOklch parses a hex colour string ("#rgb" or "#rrggbb") and converts
// it to OKLCH. Returns false if the input cannot be parsed.
func HexToOklch(hex string) (OKLCH, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return OKLCH{}, false
	}
	return FromColor(c), true
}

// FromColor converts an sRGB colour to OKLCH.
func FromColor(c colorful.Color) OKLCH {
	l, a, b := linearToOklab(c.LinearRgb())
	chroma := math.Sqrt(a*a + b*b)
	if chroma < achromaticChroma {
		return OKLCH{L: l, C: chroma, H: 0}
	}
	hue := math.Atan2(b, a) * (180.0 / math.Pi)
	if hue < 0 {
		hue += 360
	}
	return OKLCH{L: l, C: chroma, H: hue}
}

// Color converts the OKLCH value to an sRGB colour. Out-of-gamut channel
// values are clamped into [0, 1], so high-chroma colours clip towards the
// nearest representable sRGB colour.
func (o OKLCH) Color() colorful.Color {
	hRad := o.H * (math.Pi / 180.0)
	a := o.C * math.Cos(hRad)
	b := o.C * math.Sin(hRad)
	lr, lg, lb := oklabToLinear(o.L, a, b)
	return colorful.LinearRgb(lr, lg, lb).Clamped()
}

// Hex renders the colour as a lowercase sRGB hex string (e.g. "#1a2b3c").
func (o OKLCH) Hex() string {
	return o.Color().Hex()
}

// CSS renders the colour as a CSS Color 4 oklch() function string.
func (o OKLCH) CSS() string {
	return fmt.Sprintf("oklch(%.3f %.3f %.1f)", o.L, o.C, o.H)
}

// OKLab matrices from the reference implementation by Björn Ottosson.
// https://bottosson.github.io/posts/oklab/

// linearToOklab converts linear sRGB components to OKLab.
func linearToOklab(r, g, b float64) (float64, float64, float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	ll := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	aa := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bb := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return ll, aa, bb
}

// oklabToLinear converts OKLab to linear sRGB components. The result may
// fall outside [0, 1] for out-of-gamut colours.
func oklabToLinear(l, a, b float64) (float64, float64, float64) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lc := lp * lp * lp
	mc := mp * mp * mp
	sc := sp * sp * sp

	r := 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return r, g, bl
}
