package fits

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"

	"gokern/domain/core"
	"gokern/domain/observation"
	"gokern/internal/transfer"
)

// Result is the decoded content of a transfer-matrix file.
type Result struct {
	Kerim        *transfer.Cube
	KernelPhases *observation.KernelPhaseSet
	PixelScale   float64 // mas per pixel
	Wavelength   float64 // meters
}

// ReadResult loads a container previously produced by ResultWriter.
func ReadResult(dest string) (*Result, error) {
	fd, err := os.Open(dest)
	if err != nil {
		return nil, core.NewIOError(dest, err)
	}
	defer fd.Close()

	f, err := fitsio.Open(fd)
	if err != nil {
		return nil, core.NewIOError(dest, err)
	}
	defer f.Close()

	if len(f.HDUs()) < 2 {
		return nil, core.NewIOError(dest, fmt.Errorf("expected 2 HDUs, found %d", len(f.HDUs())))
	}

	kerim, res, err := readPrimary(dest, f.HDU(0))
	if err != nil {
		return nil, err
	}
	kp, err := readSecondary(dest, f.HDU(1))
	if err != nil {
		return nil, err
	}

	res.Kerim = kerim
	res.KernelPhases = kp
	return res, nil
}

func readPrimary(dest string, hdu fitsio.HDU) (*transfer.Cube, *Result, error) {
	img, ok := hdu.(fitsio.Image)
	if !ok {
		return nil, nil, core.NewIOError(dest, fmt.Errorf("primary HDU is not an image"))
	}
	hdr := img.Header()
	axes := hdr.Axes()
	if len(axes) != 3 || axes[0] != axes[1] {
		return nil, nil, core.NewIOError(dest, fmt.Errorf("primary HDU axes %v are not a square cube", axes))
	}

	res := &Result{}
	if card := hdr.Get(cardPixelScale); card != nil {
		res.PixelScale, ok = card.Value.(float64)
		if !ok {
			return nil, nil, core.NewIOError(dest, fmt.Errorf("%s card is not a float", cardPixelScale))
		}
	}
	if card := hdr.Get(cardWavelength); card != nil {
		res.Wavelength, ok = card.Value.(float64)
		if !ok {
			return nil, nil, core.NewIOError(dest, fmt.Errorf("%s card is not a float", cardWavelength))
		}
	}

	// fitsio reads into the caller's slice; it must be sized up front.
	data := make([]float64, axes[0]*axes[1]*axes[2])
	if err := img.Read(&data); err != nil {
		return nil, nil, core.NewIOError(dest, err)
	}
	cube, err := transfer.NewCube(axes[2], axes[0], data)
	if err != nil {
		return nil, nil, err
	}
	return cube, res, nil
}

func readSecondary(dest string, hdu fitsio.HDU) (*observation.KernelPhaseSet, error) {
	img, ok := hdu.(fitsio.Image)
	if !ok {
		return nil, core.NewIOError(dest, fmt.Errorf("secondary HDU is not an image"))
	}
	axes := img.Header().Axes()
	if len(axes) != 2 || axes[1] != 2 {
		return nil, core.NewIOError(dest, fmt.Errorf("secondary HDU axes %v are not a 2xM array", axes))
	}

	n := axes[0]
	data := make([]float64, 2*n)
	if err := img.Read(&data); err != nil {
		return nil, core.NewIOError(dest, err)
	}
	kp := &observation.KernelPhaseSet{
		Values: append([]float64(nil), data[:n]...),
		Errors: append([]float64(nil), data[n:]...),
	}
	return kp, nil
}
