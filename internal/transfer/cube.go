package transfer

import (
	"gonum.org/v1/gonum/mat"

	"gokern/domain/core"
)

// Cube is a dense (planes, fov, fov) stack of images, each plane flattened
// in row-major pixel order. Plane k is the image whose inner product with
// a flattened candidate sky image predicts kernel phase k. Treat the
// contents as read-only once built.
type Cube struct {
	NumPlanes int
	Fov       int
	data      []float64
}

// NewCube wraps raw row-major plane data in a Cube. The data is copied;
// len(data) must equal planes*fov*fov.
func NewCube(planes, fov int, data []float64) (*Cube, error) {
	if planes <= 0 || fov <= 0 {
		return nil, core.NewConfigurationError("cube", "dimensions must be positive")
	}
	if len(data) != planes*fov*fov {
		return nil, core.NewShapeMismatchError("cube data", len(data), planes*fov*fov)
	}
	c := newCube(planes, fov)
	copy(c.data, data)
	return c, nil
}

func newCube(planes, fov int) *Cube {
	return &Cube{
		NumPlanes: planes,
		Fov:       fov,
		data:      make([]float64, planes*fov*fov),
	}
}

func cubeFromDense(m *mat.Dense, fov int) *Cube {
	rows, _ := m.Dims()
	c := newCube(rows, fov)
	copy(c.data, m.RawMatrix().Data)
	return c
}

// Plane returns plane k as a flattened fov*fov slice.
func (c *Cube) Plane(k int) []float64 {
	n := c.Fov * c.Fov
	return c.data[k*n : (k+1)*n]
}

// At returns the value at plane k, row y, column x.
func (c *Cube) At(k, y, x int) float64 {
	return c.data[(k*c.Fov+y)*c.Fov+x]
}

// Raw returns the backing array, planes concatenated in order.
func (c *Cube) Raw() []float64 {
	return c.data
}
