// Package fits persists transfer-matrix results as a two-part FITS
// container: a primary HDU holding the (K, fov, fov) transfer-matrix cube
// with pixel-scale and wavelength cards, and a secondary HDU holding the
// measured kernel phases and their uncertainties as a 2xM array.
package fits

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/astrogo/fitsio"

	"gokern/domain/core"
	"gokern/domain/observation"
	"gokern/internal"
	"gokern/internal/transfer"
	"gokern/internal/units"
)

// DefaultSuffix identifies a kernel-phase transfer-matrix file.
const DefaultSuffix = "_kermat.fits"

// Header cards written to the primary HDU.
const (
	cardPixelScale = "PSCALE" // mas per pixel
	cardWavelength = "CWAVEL" // meters
)

// DestName appends suffix to an instrument or session name, falling back
// to DefaultSuffix when the suffix is empty.
func DestName(name, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return name + suffix
}

// ResultWriter serializes a transfer matrix and the associated
// kernel-phase measurement vectors into a FITS container.
type ResultWriter struct {
	logger *internal.Logger
}

// NewResultWriter creates a writer with the default logger.
func NewResultWriter() *ResultWriter {
	return &ResultWriter{logger: internal.NewDefaultLogger()}
}

// Write persists kerim plus the measured kernel phases to dest, replacing
// any existing file. The write goes through a temporary file in the
// destination directory followed by a rename, so a failure never leaves a
// partial file behind under the destination name.
func (w *ResultWriter) Write(kerim *transfer.Cube, kp *observation.KernelPhaseSet, pitch, wavelength float64, dest string) error {
	if kerim == nil {
		return core.NewConfigurationError("kerim", "is unset")
	}
	if kp == nil {
		return core.NewConfigurationError("observation", "is unset")
	}
	if err := kp.Validate(); err != nil {
		return err
	}
	if kp.Len() != kerim.NumPlanes {
		return core.NewShapeMismatchError("observation.Values", kp.Len(), kerim.NumPlanes)
	}
	if math.IsNaN(pitch) || pitch <= 0 {
		return core.NewConfigurationError("pitch", "must be a positive pixel pitch in radians")
	}
	if math.IsNaN(wavelength) || wavelength <= 0 {
		return core.NewConfigurationError("wavelength", "must be a positive wavelength in meters")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".kermat-*")
	if err != nil {
		return core.NewIOError(dest, err)
	}
	defer os.Remove(tmp.Name())

	if err := writeContainer(tmp, kerim, kp, pitch, wavelength); err != nil {
		tmp.Close()
		return core.NewIOError(dest, err)
	}
	if err := tmp.Close(); err != nil {
		return core.NewIOError(dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return core.NewIOError(dest, err)
	}

	w.logger.Info("[ResultWriter] wrote %d kernel phases on a %dx%d grid to %s",
		kerim.NumPlanes, kerim.Fov, kerim.Fov, dest)
	return nil
}

func writeContainer(out io.Writer, kerim *transfer.Cube, kp *observation.KernelPhaseSet, pitch, wavelength float64) error {
	f, err := fitsio.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	// FITS axes are column-major: NAXIS1 varies fastest, matching the
	// cube's row-major (plane, row, column) layout.
	primary := fitsio.NewImage(-64, []int{kerim.Fov, kerim.Fov, kerim.NumPlanes})
	defer primary.Close()
	err = primary.Header().Append(
		fitsio.Card{Name: cardPixelScale, Value: units.Rad2Mas(pitch), Comment: "pixel scale (mas/pixel)"},
		fitsio.Card{Name: cardWavelength, Value: wavelength, Comment: "central wavelength (m)"},
	)
	if err != nil {
		return err
	}
	data := kerim.Raw()
	if err := primary.Write(&data); err != nil {
		return err
	}
	if err := f.Write(primary); err != nil {
		return err
	}

	// Row 0 holds the kernel phases, row 1 their uncertainties.
	secondary := fitsio.NewImage(-64, []int{kp.Len(), 2})
	defer secondary.Close()
	stacked := make([]float64, 0, 2*kp.Len())
	stacked = append(stacked, kp.Values...)
	stacked = append(stacked, kp.Errors...)
	if err := secondary.Write(&stacked); err != nil {
		return err
	}
	return f.Write(secondary)
}
