package colour

import "fmt"

// InvalidColourError reports input that could not be parsed as a colour.
type InvalidColourError struct {
	Input string
}

func (e *InvalidColourError) Error() string {
	return fmt.Sprintf("invalid colour input %q: expected #RRGGBB", e.Input)
}

// InfeasibleSamplingError reports that rejection sampling exhausted its retry
// budget before producing the requested number of colours. The partial result
// is discarded; callers should relax MinDeltaE or lower Count.
type InfeasibleSamplingError struct {
	Requested int
	Produced  int
	MinDeltaE float64
	Attempts  int
}

func (e *InfeasibleSamplingError) Error() string {
	return fmt.Sprintf("sampling infeasible: produced %d of %d colours with min delta-E %.2f after %d attempts",
		e.Produced, e.Requested, e.MinDeltaE, e.Attempts)
}

// UnsatisfiableContrastError reports that a colour could not be pushed to the
// requested contrast ratio against the background within the adjustment
// budget. BestRatio is the closest ratio reached.
type UnsatisfiableContrastError struct {
	Colour     RGB
	Background RGB
	MinRatio   float64
	BestRatio  float64
}

func (e *UnsatisfiableContrastError) Error() string {
	return fmt.Sprintf("cannot reach contrast %.2f for %s against %s: best achievable %.2f",
		e.MinRatio, e.Colour.Hex(), e.Background.Hex(), e.BestRatio)
}
