package mask

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"gokern/domain/core"
)

func TestGeometry_Validate(t *testing.T) {
	tests := []struct {
		name      string
		geom      Geometry
		expectErr error // nil means valid
	}{
		{
			name: "valid",
			geom: Geometry{
				UV:         []Baseline{{U: 1, V: 0}, {U: 0, V: 1}},
				Redundancy: []float64{1, 2},
				KerPhi:     mat.NewDense(1, 2, []float64{1, -1}),
			},
		},
		{
			name:      "empty baselines",
			geom:      Geometry{KerPhi: mat.NewDense(1, 1, nil)},
			expectErr: core.ErrConfiguration,
		},
		{
			name: "missing relation",
			geom: Geometry{
				UV:         []Baseline{{U: 1}},
				Redundancy: []float64{1},
			},
			expectErr: core.ErrConfiguration,
		},
		{
			name: "redundancy mismatch",
			geom: Geometry{
				UV:         []Baseline{{U: 1}, {U: 2}},
				Redundancy: []float64{1},
				KerPhi:     mat.NewDense(1, 2, nil),
			},
			expectErr: core.ErrShapeMismatch,
		},
		{
			name: "relation column mismatch",
			geom: Geometry{
				UV:         []Baseline{{U: 1}, {U: 2}},
				Redundancy: []float64{1, 1},
				KerPhi:     mat.NewDense(2, 3, nil),
			},
			expectErr: core.ErrShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.geom.Validate()
			if tt.expectErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			switch tt.expectErr {
			case core.ErrConfiguration:
				if !core.IsConfigurationError(err) {
					t.Errorf("expected configuration error, got %v", err)
				}
			case core.ErrShapeMismatch:
				if !core.IsShapeMismatchError(err) {
					t.Errorf("expected shape mismatch error, got %v", err)
				}
			}
		})
	}
}

func TestGeometry_Counts(t *testing.T) {
	g := Geometry{
		UV:         []Baseline{{U: 1}, {U: 2}, {U: 3}},
		Redundancy: []float64{1, 1, 1},
		KerPhi:     mat.NewDense(2, 3, nil),
	}
	if got := g.NumBaselines(); got != 3 {
		t.Errorf("NumBaselines = %d, want 3", got)
	}
	if got := g.NumKernelPhases(); got != 2 {
		t.Errorf("NumKernelPhases = %d, want 2", got)
	}

	empty := Geometry{}
	if got := empty.NumKernelPhases(); got != 0 {
		t.Errorf("NumKernelPhases on empty geometry = %d, want 0", got)
	}
}
