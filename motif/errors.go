package motif

import (
	"fmt"
)

// RandomizationExhausted reports a degree preserving shuffle that ran out
// of attempts before applying the requested number of swaps. Trial is the
// zero based trial the engine was on, -1 outside of an engine run.
type RandomizationExhausted struct {
	Swaps    int
	Attempts int
	MaxSteps int
	Trial    int
}

func (e *RandomizationExhausted) Error() string {
	if e.Trial >= 0 {
		return fmt.Sprintf(
			"randomization exhausted on trial %v: %v swaps applied in %v attempts (budget %v)",
			e.Trial, e.Swaps, e.Attempts, e.MaxSteps)
	}
	return fmt.Sprintf(
		"randomization exhausted: %v swaps applied in %v attempts (budget %v)",
		e.Swaps, e.Attempts, e.MaxSteps)
}

// InvalidConfiguration rejects an engine configuration before any work
// happens.
type InvalidConfiguration struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvalidConfiguration) Error() string {
	return fmt.Sprintf("invalid configuration: %v = %v, %v", e.Field, e.Value, e.Reason)
}
