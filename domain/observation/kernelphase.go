// Package observation carries measured kernel-phase data supplied by the
// extraction pipeline.
package observation

import (
	"fmt"
	"math"

	"gokern/domain/core"
)

// KernelPhaseSet holds measured kernel-phase values and their
// uncertainties. Index k corresponds to row k of the mask's kernel-phase
// relation matrix.
type KernelPhaseSet struct {
	Values []float64
	Errors []float64
}

// Len returns the number of kernel phases in the set.
func (s *KernelPhaseSet) Len() int {
	return len(s.Values)
}

// Validate ensures the set is internally consistent: equal lengths,
// non-empty, and finite non-negative uncertainties.
func (s *KernelPhaseSet) Validate() error {
	if len(s.Values) == 0 {
		return core.NewConfigurationError("observation.Values", "is empty")
	}
	if len(s.Errors) != len(s.Values) {
		return core.NewShapeMismatchError("observation.Errors", len(s.Errors), len(s.Values))
	}
	for i, e := range s.Errors {
		if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
			return core.NewConfigurationError("observation.Errors",
				fmt.Sprintf("entry %d (%v) is not a valid uncertainty", i, e))
		}
	}
	return nil
}
