package evolve

import "fmt"

// ObjectiveWeights collapses multiple objective scores into the single
// float64 fitness the engine orders by. Weights are fixed when the solution
// type is defined; Collapse is then a pure weighted sum, so composite
// fitness stays totally ordered and higher stays better (negate the weight
// of an objective that should be minimized).
type ObjectiveWeights []float64

// Collapse returns the weighted sum of the given objective values.
func (w ObjectiveWeights) Collapse(values ...float64) (float64, error) {
	if len(values) != len(w) {
		return 0, fmt.Errorf("objective count mismatch: got=%d want=%d", len(values), len(w))
	}
	total := 0.0
	for i, value := range values {
		total += w[i] * value
	}
	return total, nil
}
