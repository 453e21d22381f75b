// Package transfer builds the image-to-kernel-phase transfer matrix for a
// sparse aperture mask: per output pixel, the sensitivity of each
// kernel-phase observable to flux at that pixel. The result is a linear
// forward operator - predicted kernel phases are the product of the matrix
// with a flattened candidate sky image.
package transfer

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"gokern/domain/core"
	"gokern/domain/mask"
)

// gridOffset shifts pixel coordinates by half a pixel so the grid is
// pixel-centered rather than pixel-corner-centered.
const gridOffset = 0.5

// Builder owns the instrument configuration and mask geometry and
// produces the transfer matrix. Both inputs are validated once at
// construction and never mutated afterwards, so Build is pure: identical
// inputs give bit-identical output.
type Builder struct {
	cfg  Config
	geom *mask.Geometry
}

// NewBuilder validates the configuration and mask geometry and returns a
// ready builder.
func NewBuilder(cfg Config, geom *mask.Geometry) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if geom == nil {
		return nil, core.NewConfigurationError("mask", "is unset")
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, geom: geom}, nil
}

// Build computes the sine-basis transfer matrix kerim and its cosine-basis
// counterpart symim, each of shape (num kernel phases, fov, fov).
//
// For every baseline the fringe phase over the pixel grid is
//
//	phase(x,y) = 2*pi * pitch * ((x-0.5)*u + (y-0.5)*v) / wavelength
//
// and the redundancy-weighted sine and cosine of that phase form one row
// of the (baselines x pixels) basis matrices. Left-multiplying by the
// kernel-phase relation projects baseline-phase sensitivity into
// kernel-phase sensitivity in a single matrix product.
func (b *Builder) Build(ctx context.Context) (kerim, symim *Cube, err error) {
	nbl := b.geom.NumBaselines()
	nkp := b.geom.NumKernelPhases()
	fov := b.cfg.Fov
	npix := fov * fov

	sinBasis := mat.NewDense(nbl, npix, nil)
	cosBasis := mat.NewDense(nbl, npix, nil)

	// Rows are disjoint, so baselines are evaluated concurrently.
	g, gctx := errgroup.WithContext(ctx)
	for q := 0; q < nbl; q++ {
		q := q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b.fillBasisRows(b.geom.UV[q], b.geom.Redundancy[q],
				sinBasis.RawRowView(q), cosBasis.RawRowView(q))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	kerFlat := mat.NewDense(nkp, npix, nil)
	symFlat := mat.NewDense(nkp, npix, nil)
	kerFlat.Mul(b.geom.KerPhi, sinBasis)
	symFlat.Mul(b.geom.KerPhi, cosBasis)

	return cubeFromDense(kerFlat, fov), cubeFromDense(symFlat, fov), nil
}

// fillBasisRows evaluates one baseline's fringe phase over the pixel grid
// and writes the redundancy-weighted sine and cosine basis images into the
// given flattened rows. The baseline is an explicit argument; nothing is
// shared across concurrent calls.
func (b *Builder) fillBasisRows(bl mask.Baseline, redundancy float64, sinRow, cosRow []float64) {
	scale := 2 * math.Pi * b.cfg.Pitch / b.cfg.Wavelength
	i := 0
	for y := 0; y < b.cfg.Fov; y++ {
		yTerm := (float64(y) - gridOffset) * bl.V
		for x := 0; x < b.cfg.Fov; x++ {
			phase := scale * ((float64(x)-gridOffset)*bl.U + yTerm)
			s, c := math.Sincos(phase)
			sinRow[i] = redundancy * s
			cosRow[i] = redundancy * c
			i++
		}
	}
}
