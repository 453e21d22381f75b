// Package imaging provides pixel-grid support routines used when
// preparing candidate frames for the transfer-matrix operator.
package imaging

import (
	"math"

	"github.com/montanaflynn/stats"

	"gokern/domain/core"
)

// SuperGauss returns a rows x cols super-Gaussian window exp(-(r/w)^4)
// centered at (y0, x0).
func SuperGauss(rows, cols int, y0, x0, width float64) [][]float64 {
	out := make([][]float64, rows)
	for y := range out {
		out[y] = make([]float64, cols)
		for x := range out[y] {
			dy := float64(y) - y0
			dx := float64(x) - x0
			r := math.Hypot(dx, dy) / width
			out[y][x] = math.Exp(-(r * r * r * r))
		}
	}
	return out
}

// Centroid returns the (x, y) intensity centroid of img, counting only
// pixels strictly above threshold. With binarize set, every selected
// pixel contributes equally instead of by intensity.
func Centroid(img [][]float64, threshold float64, binarize bool) (x0, y0 float64, err error) {
	if len(img) == 0 || len(img[0]) == 0 {
		return 0, 0, core.NewConfigurationError("imaging.Centroid img", "is empty")
	}
	sy := len(img)
	sx := len(img[0])

	profx := make([]float64, sx)
	profy := make([]float64, sy)
	for y, row := range img {
		if len(row) != sx {
			return 0, 0, core.NewShapeMismatchError("imaging.Centroid row", len(row), sx)
		}
		for x, v := range row {
			if v <= threshold {
				continue
			}
			if binarize {
				v = 1.0
			}
			profx[x] += v
			profy[y] += v
		}
	}

	// Background-clip the marginal profiles before weighting.
	subtractMin(profx)
	subtractMin(profy)

	return weightedMean(profx), weightedMean(profy), nil
}

// Window subtracts the median background from img and applies a
// super-Gaussian mask of the given radius centered on the grid.
func Window(img [][]float64, radius float64) ([][]float64, error) {
	if len(img) == 0 || len(img[0]) == 0 {
		return nil, core.NewConfigurationError("imaging.Window img", "is empty")
	}
	if radius <= 0 {
		return nil, core.NewConfigurationError("imaging.Window radius", "must be positive")
	}
	sy := len(img)
	sx := len(img[0])

	flat := make([]float64, 0, sy*sx)
	for _, row := range img {
		if len(row) != sx {
			return nil, core.NewShapeMismatchError("imaging.Window row", len(row), sx)
		}
		flat = append(flat, row...)
	}
	bkg, err := stats.Median(flat)
	if err != nil {
		return nil, core.NewConfigurationError("imaging.Window img", err.Error())
	}

	mask := SuperGauss(sy, sx, float64(sy)/2, float64(sx)/2, radius)
	out := make([][]float64, sy)
	for y := range out {
		out[y] = make([]float64, sx)
		for x := range out[y] {
			out[y][x] = (img[y][x] - bkg) * mask[y][x]
		}
	}
	return out, nil
}

// Rebin block-averages img down to rows x cols. The input dimensions must
// be integer multiples of the requested shape.
func Rebin(img [][]float64, rows, cols int) ([][]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, core.NewConfigurationError("imaging.Rebin shape", "must be positive")
	}
	sy := len(img)
	if sy == 0 || sy%rows != 0 {
		return nil, core.NewShapeMismatchError("imaging.Rebin rows", sy, rows)
	}
	sx := len(img[0])
	if sx == 0 || sx%cols != 0 {
		return nil, core.NewShapeMismatchError("imaging.Rebin cols", sx, cols)
	}

	by := sy / rows
	bx := sx / cols
	out := make([][]float64, rows)
	for y := range out {
		out[y] = make([]float64, cols)
		for x := range out[y] {
			sum := 0.0
			for i := 0; i < by; i++ {
				for j := 0; j < bx; j++ {
					sum += img[y*by+i][x*bx+j]
				}
			}
			out[y][x] = sum / float64(by*bx)
		}
	}
	return out, nil
}

func subtractMin(p []float64) {
	min := p[0]
	for _, v := range p {
		if v < min {
			min = v
		}
	}
	for i := range p {
		p[i] -= min
	}
}

func weightedMean(p []float64) float64 {
	num, den := 0.0, 0.0
	for i, v := range p {
		num += v * float64(i)
		den += v
	}
	if den == 0 {
		return 0
	}
	return num / den
}
