package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// targetsValue is a repeatable pflag.Value collecting sparse per-step
// contrast targets, e.g. --target 2=4.5 --target 9=7.
type targetsValue struct {
	targets map[int]float64
}

var _ pflag.Value = (*targetsValue)(nil)

func newTargetsValue() *targetsValue {
	return &targetsValue{targets: make(map[int]float64)}
}

// Set parses a single "index=ratio" pair and records it. Repeating an
// index overwrites the earlier value.
func (v *targetsValue) Set(s string) error {
	idxStr, ratioStr, found := strings.Cut(s, "=")
	if !found {
		return fmt.Errorf("invalid target %q (expected index=ratio, e.g. 2=4.5)", s)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
	if err != nil {
		return fmt.Errorf("invalid step index in target %q: %w", s, err)
	}
	if idx < 0 {
		return fmt.Errorf("step index must not be negative, got %d", idx)
	}

	ratio, err := strconv.ParseFloat(strings.TrimSpace(ratioStr), 64)
	if err != nil {
		return fmt.Errorf("invalid contrast ratio in target %q: %w", s, err)
	}
	if ratio < 1 || ratio > 21 {
		return fmt.Errorf("contrast ratio must be between 1 and 21, got %g", ratio)
	}

	v.targets[idx] = ratio
	return nil
}

func (v *targetsValue) Type() string {
	return "index=ratio"
}

func (v *targetsValue) String() string {
	if len(v.targets) == 0 {
		return ""
	}
	indices := make([]int, 0, len(v.targets))
	for idx := range v.targets {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	parts := make([]string, 0, len(indices))
	for _, idx := range indices {
		parts = append(parts, fmt.Sprintf("%d=%g", idx, v.targets[idx]))
	}
	return strings.Join(parts, ",")
}

// Map returns a copy of the collected targets.
func (v *targetsValue) Map() map[int]float64 {
	if len(v.targets) == 0 {
		return nil
	}
	out := make(map[int]float64, len(v.targets))
	for idx, ratio := range v.targets {
		out[idx] = ratio
	}
	return out
}
