// Package model provides forward models of simple astrophysical sources
// in the mask's observable space. These predict observables for candidate
// source parameters; they do not fit anything.
package model

import (
	"math"
	"math/cmplx"

	"gokern/domain/core"
	"gokern/domain/mask"
	"gokern/internal/units"
)

// Binary parameterizes a binary star.
type Binary struct {
	Separation    float64 // angular separation, mas
	PositionAngle float64 // position angle, degrees east of north
	Contrast      float64 // primary/secondary flux ratio

	// Optional uniform-disk diameters, mas. Zero means unresolved.
	PrimaryDiameter   float64
	SecondaryDiameter float64
}

func (p Binary) validate() error {
	if math.IsNaN(p.Separation) || p.Separation <= 0 {
		return core.NewConfigurationError("binary.Separation", "must be a positive separation in mas")
	}
	if math.IsNaN(p.Contrast) || p.Contrast <= 0 {
		return core.NewConfigurationError("binary.Contrast", "must be a positive flux ratio")
	}
	if p.PrimaryDiameter < 0 || p.SecondaryDiameter < 0 {
		return core.NewConfigurationError("binary diameters", "must be non-negative")
	}
	return nil
}

// ComplexVis returns the complex visibility of the binary on each
// baseline. With norm set the visibilities are normalized to unit total
// flux, as required for squared visibilities.
func ComplexVis(uv []mask.Baseline, wavelength float64, p Binary, norm bool) ([]complex128, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(wavelength) || wavelength <= 0 {
		return nil, core.NewConfigurationError("wavelength", "must be a positive wavelength in meters")
	}

	// Relative location of the secondary, radians.
	th := (p.PositionAngle + 90.0) * math.Pi / 180.0
	ddec := units.Mas2Rad(p.Separation * math.Sin(th))
	dra := -units.Mas2Rad(p.Separation * math.Cos(th))

	// Split unit flux between the components.
	l2 := 1.0 / (p.Contrast + 1.0)
	l1 := 1.0 - l2

	out := make([]complex128, len(uv))
	for i, bl := range uv {
		phi := cmplx.Exp(complex(0, -2*math.Pi*(bl.U*dra+bl.V*ddec)/wavelength))
		v1, v2 := 1.0, 1.0
		if p.PrimaryDiameter > 0 {
			v1 = diskFactor(p.PrimaryDiameter, bl, wavelength)
		}
		if p.SecondaryDiameter > 0 {
			v2 = diskFactor(p.SecondaryDiameter, bl, wavelength)
		}
		cv := complex(l1*v1, 0) + complex(l2*v2, 0)*phi
		if norm {
			cv /= complex(l1+l2, 0)
		}
		out[i] = cv
	}
	return out, nil
}

// diskFactor is the uniform-disk visibility 2*J1(pi*theta*x)/(pi*theta*x),
// with x the baseline length in wavelengths.
func diskFactor(diamMas float64, bl mask.Baseline, wavelength float64) float64 {
	x := math.Hypot(bl.U, bl.V) / wavelength
	arg := math.Pi * units.Mas2Rad(diamMas) * x
	if arg == 0 {
		return 1.0
	}
	return 2 * math.J1(arg) / arg
}

// Phase returns the baseline phases of the binary in degrees, wrapped to
// (-180, 180].
func Phase(uv []mask.Baseline, wavelength float64, p Binary) ([]float64, error) {
	cvis, err := ComplexVis(uv, wavelength, p, false)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cvis))
	for i, cv := range cvis {
		deg := cmplx.Phase(cv) * 180.0 / math.Pi
		out[i] = math.Mod(deg+10980.0, 360.0) - 180.0
	}
	return out, nil
}

// Vis2 returns the squared visibilities of the binary, normalized to unit
// total flux.
func Vis2(uv []mask.Baseline, wavelength float64, p Binary) ([]float64, error) {
	cvis, err := ComplexVis(uv, wavelength, p, true)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cvis))
	for i, cv := range cvis {
		out[i] = real(cv * cmplx.Conj(cv))
	}
	return out, nil
}
