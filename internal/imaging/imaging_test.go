package imaging

import (
	"math"
	"testing"

	"gokern/domain/core"
)

func TestSuperGauss(t *testing.T) {
	g := SuperGauss(9, 9, 4, 4, 2.0)

	if got := g[4][4]; got != 1.0 {
		t.Errorf("center value = %v, want 1", got)
	}
	// Symmetric about the center.
	if g[4][1] != g[4][7] || g[1][4] != g[7][4] {
		t.Error("window is not symmetric about its center")
	}
	// Monotonically decreasing along a row away from the center.
	for x := 4; x < 8; x++ {
		if g[4][x+1] >= g[4][x] {
			t.Fatalf("window not decreasing at x=%d: %v >= %v", x, g[4][x+1], g[4][x])
		}
	}
}

func TestCentroid_Delta(t *testing.T) {
	img := make([][]float64, 8)
	for y := range img {
		img[y] = make([]float64, 8)
	}
	img[5][2] = 7.0

	x0, y0, err := Centroid(img, 0, false)
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}
	if x0 != 2 || y0 != 5 {
		t.Errorf("centroid = (%v, %v), want (2, 5)", x0, y0)
	}

	x0, y0, err = Centroid(img, 0, true)
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}
	if x0 != 2 || y0 != 5 {
		t.Errorf("binarized centroid = (%v, %v), want (2, 5)", x0, y0)
	}
}

func TestCentroid_InvalidInput(t *testing.T) {
	if _, _, err := Centroid(nil, 0, false); !core.IsConfigurationError(err) {
		t.Errorf("empty image: expected configuration error, got %v", err)
	}

	ragged := [][]float64{{1, 2, 3}, {4, 5}}
	if _, _, err := Centroid(ragged, 0, false); !core.IsShapeMismatchError(err) {
		t.Errorf("ragged image: expected shape mismatch error, got %v", err)
	}
}

func TestCentroid_TwoPointBalance(t *testing.T) {
	img := make([][]float64, 8)
	for y := range img {
		img[y] = make([]float64, 8)
	}
	img[3][1] = 1.0
	img[3][5] = 1.0

	x0, y0, err := Centroid(img, 0, false)
	if err != nil {
		t.Fatalf("Centroid: %v", err)
	}
	if math.Abs(x0-3) > 1e-12 || math.Abs(y0-3) > 1e-12 {
		t.Errorf("centroid = (%v, %v), want (3, 3)", x0, y0)
	}
}

func TestWindow_ConstantImage(t *testing.T) {
	img := make([][]float64, 6)
	for y := range img {
		img[y] = make([]float64, 6)
		for x := range img[y] {
			img[y][x] = 4.2
		}
	}

	out, err := Window(img, 2.0)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	// Median background equals the constant, so everything cancels.
	for y := range out {
		for x := range out[y] {
			if out[y][x] != 0 {
				t.Fatalf("out[%d][%d] = %v, want 0", y, x, out[y][x])
			}
		}
	}
}

func TestWindow_EmptyImage(t *testing.T) {
	if _, err := Window(nil, 2.0); !core.IsConfigurationError(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestRebin(t *testing.T) {
	img := [][]float64{
		{1, 1, 2, 2},
		{1, 1, 2, 2},
		{3, 3, 4, 4},
		{3, 3, 4, 4},
	}

	out, err := Rebin(img, 2, 2)
	if err != nil {
		t.Fatalf("Rebin: %v", err)
	}
	want := [][]float64{{1, 2}, {3, 4}}
	for y := range want {
		for x := range want[y] {
			if out[y][x] != want[y][x] {
				t.Errorf("out[%d][%d] = %v, want %v", y, x, out[y][x], want[y][x])
			}
		}
	}
}

func TestRebin_ShapeMismatch(t *testing.T) {
	img := [][]float64{{1, 2, 3}, {4, 5, 6}}
	if _, err := Rebin(img, 2, 2); !core.IsShapeMismatchError(err) {
		t.Errorf("expected shape mismatch error, got %v", err)
	}
}
