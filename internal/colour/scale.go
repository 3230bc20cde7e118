package colour

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultReference is the colour contrast ratios are measured against.
const DefaultReference = "#ffffff"

// Default curve endpoints: index 0 sits just below white and the last index
// just above black. The curve deliberately does not pass through the
// family's own base lightness; the base colour seeds only the single-swatch
// preview shown before a scale is expanded.
const (
	curveTop  = 0.97
	curveSpan = 0.90
)

// ScaleRequest describes one scale generation call. The caller owns the
// data; the engine reads a snapshot and holds no state across calls.
type ScaleRequest struct {
	FamilyID string

	// BaseLightness is the family's own lightness. It is carried for
	// preview rendering only; the generated curve ignores it.
	BaseLightness float64

	Hue    float64
	Chroma float64
	Steps  int

	// Targets maps step indices to desired WCAG contrast ratios. Sparse:
	// absent indices follow the default lightness curve.
	Targets map[int]float64

	// Reference is the hex colour contrast is measured against. Empty
	// means DefaultReference.
	Reference string
}

// Step is one generated entry of a colour scale. Steps are recomputed on
// every call and carry no identity beyond it.
type Step struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Lightness float64 `json:"l"`
	Chroma    float64 `json:"c"`
	Hue       float64 `json:"h"`
	CSS       string  `json:"css"`
	Hex       string  `json:"hex"`

	// Contrast is the achieved ratio against the reference colour,
	// reported for every step whether or not a target was requested.
	Contrast float64 `json:"contrast"`

	Target         float64 `json:"target,omitempty"`
	ContrastForced bool    `json:"contrastForced"`

	// Residual is |achieved-target| from the solver for forced steps, so
	// unreachable targets can be flagged instead of silently accepted.
	Residual float64 `json:"residual,omitempty"`
}

// GenerateScale produces the ordered colour steps for one family. Chroma
// and hue are held fixed across the scale; lightness follows the default
// curve except where a contrast target forces it. The function is pure:
// identical requests yield identical output.
func GenerateScale(req ScaleRequest) ([]Step, error) {
	if req.Steps < 2 {
		return nil, fmt.Errorf("step count must be at least 2, got %d", req.Steps)
	}

	refHex := req.Reference
	if refHex == "" {
		refHex = DefaultReference
	}
	reference, err := colorful.Hex(refHex)
	if err != nil {
		return nil, fmt.Errorf("invalid reference colour %q: %w", refHex, err)
	}

	solver := NewContrastSolver()
	steps := make([]Step, req.Steps)

	for i := range steps {
		step := Step{
			Index:  i,
			Name:   StepName(i),
			Chroma: req.Chroma,
			Hue:    req.Hue,
		}

		if target, ok := req.Targets[i]; ok {
			// The solver's best-effort lightness is always accepted;
			// the residual says how close it got.
			sol := solver.Solve(req.Chroma, req.Hue, target, reference)
			step.Lightness = roundLightness(sol.Lightness)
			step.Target = target
			step.ContrastForced = true
			step.Residual = sol.Residual
		} else {
			t := float64(i) / float64(req.Steps-1)
			step.Lightness = roundLightness(curveTop - t*curveSpan)
		}

		c := OKLCH{L: step.Lightness, C: req.Chroma, H: req.Hue}
		step.CSS = c.CSS()
		step.Hex = c.Hex()
		step.Contrast = ContrastRatio(c.Color(), reference)
		steps[i] = step
	}

	return steps, nil
}

// roundLightness rounds to the 3 decimal places used for storage and
// display. The solver itself searches at full precision.
func roundLightness(l float64) float64 {
	return math.Round(l*1000) / 1000
}
