// Package mask defines the aperture-mask geometry consumed by the
// transfer-matrix builder. Construction of the geometry itself (baseline
// discovery, redundancy counting, null-space extraction) happens upstream;
// this package only carries the result and its invariants.
package mask

import (
	"gonum.org/v1/gonum/mat"

	"gokern/domain/core"
)

// Baseline is a uv-plane vector between two sub-apertures, in meters.
type Baseline struct {
	U float64
	V float64
}

// Geometry bundles the mask-derived inputs to the builder: the independent
// baselines, their redundancy weights and the kernel-phase relation matrix.
// Ordering is significant: UV[q], Redundancy[q] and column q of KerPhi all
// refer to the same baseline.
type Geometry struct {
	UV         []Baseline
	Redundancy []float64
	KerPhi     *mat.Dense // (num kernel phases) x (num baselines)
}

// NumBaselines returns the number of independent baselines in the mask.
func (g *Geometry) NumBaselines() int {
	return len(g.UV)
}

// NumKernelPhases returns the number of rows of the kernel-phase relation.
func (g *Geometry) NumKernelPhases() int {
	if g.KerPhi == nil {
		return 0
	}
	rows, _ := g.KerPhi.Dims()
	return rows
}

// Validate ensures the geometry is internally consistent.
func (g *Geometry) Validate() error {
	if len(g.UV) == 0 {
		return core.NewConfigurationError("mask.UV", "is empty")
	}
	if g.KerPhi == nil {
		return core.NewConfigurationError("mask.KerPhi", "is unset")
	}
	if len(g.Redundancy) != len(g.UV) {
		return core.NewShapeMismatchError("mask.Redundancy", len(g.Redundancy), len(g.UV))
	}
	_, cols := g.KerPhi.Dims()
	if cols != len(g.UV) {
		return core.NewShapeMismatchError("mask.KerPhi columns", cols, len(g.UV))
	}
	return nil
}
