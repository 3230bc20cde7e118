package colour

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func TestGenerateScaleBoundary(t *testing.T) {
	// With 3 steps the default curve hits t = 0, 0.5, 1.
	steps, err := GenerateScale(ScaleRequest{
		FamilyID: "test",
		Hue:      260,
		Chroma:   0.15,
		Steps:    3,
	})
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	want := []float64{0.97, 0.52, 0.07}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i, w := range want {
		if steps[i].Lightness != w {
			t.Errorf("step %d lightness = %f, want %f", i, steps[i].Lightness, w)
		}
	}
}

func TestGenerateScaleShape(t *testing.T) {
	req := ScaleRequest{
		FamilyID:      "blues",
		BaseLightness: 0.6,
		Hue:           260,
		Chroma:        0.15,
		Steps:         18,
	}

	steps, err := GenerateScale(req)
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	if len(steps) != req.Steps {
		t.Fatalf("got %d steps, want %d", len(steps), req.Steps)
	}

	for i, step := range steps {
		if step.Index != i {
			t.Errorf("step %d has index %d", i, step.Index)
		}
		if step.Chroma != req.Chroma {
			t.Errorf("step %d chroma = %f, want %f", i, step.Chroma, req.Chroma)
		}
		if step.Hue != req.Hue {
			t.Errorf("step %d hue = %f, want %f", i, step.Hue, req.Hue)
		}
		if step.ContrastForced {
			t.Errorf("step %d is contrast forced without a target", i)
		}
		if step.Contrast < 1 {
			t.Errorf("step %d contrast = %f, want >= 1", i, step.Contrast)
		}
		if step.Hex == "" || step.CSS == "" {
			t.Errorf("step %d missing display strings", i)
		}
	}
}

func TestGenerateScaleDefaultCurveMonotonic(t *testing.T) {
	steps, err := GenerateScale(ScaleRequest{Hue: 30, Chroma: 0.1, Steps: 12})
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	for i := 1; i < len(steps); i++ {
		if steps[i].Lightness >= steps[i-1].Lightness {
			t.Errorf("lightness not strictly decreasing at step %d: %f >= %f",
				i, steps[i].Lightness, steps[i-1].Lightness)
		}
	}

	if steps[0].Lightness != 0.97 {
		t.Errorf("first step lightness = %f, want 0.97", steps[0].Lightness)
	}
	if steps[len(steps)-1].Lightness != 0.07 {
		t.Errorf("last step lightness = %f, want 0.07", steps[len(steps)-1].Lightness)
	}
}

func TestGenerateScaleStepNames(t *testing.T) {
	steps, err := GenerateScale(ScaleRequest{Hue: 260, Chroma: 0.15, Steps: 18})
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	// Names follow the fixed label list "100", "99", ... in order.
	for i, step := range steps {
		want := fmt.Sprintf("%d", 100-i)
		if step.Name != want {
			t.Errorf("step %d name = %q, want %q", i, step.Name, want)
		}
	}
}

func TestGenerateScaleDeterministic(t *testing.T) {
	req := ScaleRequest{
		FamilyID: "greens",
		Hue:      145,
		Chroma:   0.12,
		Steps:    10,
		Targets:  map[int]float64{3: 3.0, 7: 7.0},
	}

	first, err := GenerateScale(req)
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}
	second, err := GenerateScale(req)
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests produced different scales")
	}
}

func TestGenerateScaleContrastForcedFlag(t *testing.T) {
	targets := map[int]float64{2: 4.5, 5: 7.0}
	steps, err := GenerateScale(ScaleRequest{Hue: 260, Chroma: 0.15, Steps: 8, Targets: targets})
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	for i, step := range steps {
		_, targeted := targets[i]
		if step.ContrastForced != targeted {
			t.Errorf("step %d forced = %v, targeted = %v", i, step.ContrastForced, targeted)
		}
		if targeted && step.Target != targets[i] {
			t.Errorf("step %d target = %f, want %f", i, step.Target, targets[i])
		}
		if !targeted && step.Target != 0 {
			t.Errorf("step %d carries target %f without a constraint", i, step.Target)
		}
	}
}

func TestGenerateScaleForcedStepHitsTarget(t *testing.T) {
	steps, err := GenerateScale(ScaleRequest{
		Hue:     260,
		Chroma:  0.15,
		Steps:   5,
		Targets: map[int]float64{2: 4.5},
	})
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	forced := steps[2]
	// The stored lightness is rounded to 3 decimals, which can add up to
	// ~0.01 of contrast drift on top of the solver tolerance.
	if math.Abs(forced.Contrast-4.5) > 0.1 {
		t.Errorf("forced step contrast = %f, want ~4.5", forced.Contrast)
	}
	if forced.Residual >= DefaultSolverTolerance {
		t.Errorf("forced step residual = %f, want < %f", forced.Residual, DefaultSolverTolerance)
	}
}

func TestGenerateScaleUnreachableTargetAccepted(t *testing.T) {
	// Targets beyond 21:1 cannot be met; the step still gets the closest
	// achievable colour and stays marked as forced.
	steps, err := GenerateScale(ScaleRequest{
		Hue:     260,
		Chroma:  0.15,
		Steps:   4,
		Targets: map[int]float64{1: 30},
	})
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	forced := steps[1]
	if !forced.ContrastForced {
		t.Error("unreachable target cleared the forced flag")
	}
	if forced.Lightness > 0.01 {
		t.Errorf("forced lightness = %f, want near 0", forced.Lightness)
	}
	if forced.Residual < 5 {
		t.Errorf("residual = %f, want large for an unreachable target", forced.Residual)
	}
}

func TestGenerateScaleRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  ScaleRequest
	}{
		{
			name: "one step",
			req:  ScaleRequest{Hue: 260, Chroma: 0.15, Steps: 1},
		},
		{
			name: "zero steps",
			req:  ScaleRequest{Hue: 260, Chroma: 0.15, Steps: 0},
		},
		{
			name: "negative steps",
			req:  ScaleRequest{Hue: 260, Chroma: 0.15, Steps: -4},
		},
		{
			name: "bad reference",
			req:  ScaleRequest{Hue: 260, Chroma: 0.15, Steps: 5, Reference: "not-a-colour"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateScale(tt.req); err == nil {
				t.Error("GenerateScale() expected error, got nil")
			}
		})
	}
}

func TestGenerateScaleAlternateReference(t *testing.T) {
	// Contrast against a dark reference: the solver direction still holds
	// because the engine only reports achieved contrast for default steps.
	steps, err := GenerateScale(ScaleRequest{
		Hue:       260,
		Chroma:    0.1,
		Steps:     5,
		Reference: "#000000",
	})
	if err != nil {
		t.Fatalf("GenerateScale() error = %v", err)
	}

	// Against black the lightest step has the highest contrast.
	if steps[0].Contrast <= steps[len(steps)-1].Contrast {
		t.Errorf("contrast ordering wrong against black: first %f, last %f",
			steps[0].Contrast, steps[len(steps)-1].Contrast)
	}
}

func TestStepName(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{name: "first", index: 0, want: "100"},
		{name: "second", index: 1, want: "99"},
		{name: "last label", index: 100, want: "0"},
		{name: "past label list", index: 101, want: "101"},
		{name: "far past label list", index: 250, want: "250"},
		{name: "negative", index: -1, want: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepName(tt.index); got != tt.want {
				t.Errorf("StepName(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}
