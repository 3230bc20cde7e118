package colour

import "strconv"

// stepNames is the fixed label list for scale steps, "100" down to "0".
// Index i maps to label 100-i; scales longer than the list fall back to
// the numeric index.
var stepNames = buildStepNames()

func buildStepNames() []string {
	names := make([]string, 101)
	for i := range names {
		names[i] = strconv.Itoa(100 - i)
	}
	return names
}

// StepName returns the display label for a step index.
func StepName(index int) string {
	if index >= 0 && index < len(stepNames) {
		return stepNames[index]
	}
	return strconv.Itoa(index)
}
