package colour

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultSolverTolerance is the absolute contrast error at which the
	// search terminates early.
	DefaultSolverTolerance = 0.05

	// DefaultSolverIterations bounds the bisection. Twenty halvings of
	// [0, 1] resolve lightness well below display precision.
	DefaultSolverIterations = 20
)

// ContrastSolver finds the OKLCH lightness at which a colour of fixed
// chroma and hue reaches a target WCAG contrast ratio against a reference
// colour. Against a light reference the relationship is monotonic: lower
// lightness means higher contrast.
type ContrastSolver struct {
	Tolerance     float64
	MaxIterations int
}

// NewContrastSolver returns a solver with the default tolerance and
// iteration budget.
func NewContrastSolver() *ContrastSolver {
	return &ContrastSolver{
		Tolerance:     DefaultSolverTolerance,
		MaxIterations: DefaultSolverIterations,
	}
}

// Solution is the outcome of a contrast search. The solver never fails:
// when the target is unreachable at either extreme it reports the closest
// achievable lightness with Converged=false, and the residual error is
// preserved so callers can surface it.
type Solution struct {
	Lightness  float64
	Achieved   float64
	Residual   float64
	Iterations int
	Converged  bool
}

// Solve bisects lightness in [0, 1] until the achieved contrast is within
// tolerance of the target or the iteration budget is spent. Contrast below
// target moves the upper bound down (darker).
func (s *ContrastSolver) Solve(chroma, hue, target float64, reference colorful.Color) Solution {
	tolerance := s.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultSolverTolerance
	}
	maxIterations := s.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultSolverIterations
	}

	lo, hi := 0.0, 1.0
	best := Solution{Residual: math.Inf(1)}

	for i := 0; i < maxIterations; i++ {
		mid := (lo + hi) / 2
		contrast := ContrastRatio(OKLCH{L: mid, C: chroma, H: hue}.Color(), reference)
		residual := math.Abs(contrast - target)

		if residual < best.Residual {
			best = Solution{
				Lightness:  mid,
				Achieved:   contrast,
				Residual:   residual,
				Iterations: i + 1,
			}
		}

		if residual < tolerance {
			return Solution{
				Lightness:  mid,
				Achieved:   contrast,
				Residual:   residual,
				Iterations: i + 1,
				Converged:  true,
			}
		}

		if contrast < target {
			hi = mid
		} else {
			lo = mid
		}
	}

	best.Iterations = maxIterations
	return best
}
