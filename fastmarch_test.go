package fastmarch

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/fastmarch/grid"
)

// TestSignedDistance_S1 is scenario S1: a single 1-D source at index 2
// of a 5-cell grid, unit spacing, unit speed.
func TestSignedDistance_S1(t *testing.T) {
	size := grid.Size{5}
	got, err := SignedDistance(
		size,
		[]float64{1.0},
		1.0,
		[]grid.Index{{2}},
		[]float64{0.0},
		[][]float64{{1.0}},
	)
	if err != nil {
		t.Fatalf("SignedDistance: %v", err)
	}
	want := []float64{-2, -1, 0, 1, 2}
	for i, w := range want {
		if math.Abs(got[i]-w) > 1e-9 {
			t.Errorf("got[%d] = %v; want %v", i, got[i], w)
		}
	}
}

// TestSignedDistance_S2 is scenario S2: the same source with half-unit
// spacing, which should halve every distance.
func TestSignedDistance_S2(t *testing.T) {
	size := grid.Size{5}
	got, err := SignedDistance(
		size,
		[]float64{0.5},
		1.0,
		[]grid.Index{{2}},
		[]float64{0.0},
		[][]float64{{1.0}},
	)
	if err != nil {
		t.Fatalf("SignedDistance: %v", err)
	}
	want := []float64{-1.0, -0.5, 0.0, 0.5, 1.0}
	for i, w := range want {
		if math.Abs(got[i]-w) > 1e-9 {
			t.Errorf("got[%d] = %v; want %v", i, got[i], w)
		}
	}
}

// TestUnsignedDistance_S3 is scenario S3: a single 2-D point source,
// checking the axis-aligned distances exactly and the diagonal distance
// within FMM's first-order error near diagonals.
func TestUnsignedDistance_S3(t *testing.T) {
	size := grid.Size{5, 5}
	got, err := UnsignedDistance(
		size,
		[]float64{1, 1},
		1.0,
		[]grid.Index{{2, 2}},
		[]float64{0.0},
		[][]float64{{1.0, 0.0}},
	)
	if err != nil {
		t.Fatalf("UnsignedDistance: %v", err)
	}

	g, err := grid.New[float64](size, 0)
	if err != nil {
		t.Fatal(err)
	}
	copy(g.Cells(), got)

	at := func(idx grid.Index) float64 {
		v, err := g.At(idx)
		if err != nil {
			t.Fatalf("At(%v): %v", idx, err)
		}
		return v
	}

	if v := at(grid.Index{2, 0}); math.Abs(v-2) > 1e-9 {
		t.Errorf("distance at (2,0) = %v; want 2", v)
	}
	if v := at(grid.Index{4, 2}); math.Abs(v-2) > 1e-9 {
		t.Errorf("distance at (4,2) = %v; want 2", v)
	}

	want := math.Sqrt(8)
	got00 := at(grid.Index{0, 0})
	if math.Abs(got00-want) > 0.08*want {
		t.Errorf("distance at (0,0) = %v; want approx %v within 8%%", got00, want)
	}
}

// TestUnsignedDistance_S4 is scenario S4: an invalid speed must be
// rejected before any march runs.
func TestUnsignedDistance_S4(t *testing.T) {
	_, err := UnsignedDistance(
		grid.Size{3, 3},
		[]float64{1, 1},
		0,
		[]grid.Index{{1, 1}},
		[]float64{0.0},
		[][]float64{{1.0, 0.0}},
	)
	if !errors.Is(err, ErrInvalidSpeed) {
		t.Errorf("error = %v; want ErrInvalidSpeed", err)
	}
}

func TestUnsignedDistance_InvalidSize(t *testing.T) {
	_, err := UnsignedDistance(
		grid.Size{0, 3},
		[]float64{1, 1},
		1.0,
		nil, nil, nil,
	)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v; want ErrInvalidSize", err)
	}
}

func TestUnsignedDistance_InvalidSpacing(t *testing.T) {
	_, err := UnsignedDistance(
		grid.Size{3, 3},
		[]float64{1, 0},
		1.0,
		nil, nil, nil,
	)
	if !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("error = %v; want ErrInvalidSpacing", err)
	}
}

func TestUnsignedDistance_SizeMismatch(t *testing.T) {
	_, err := UnsignedDistance(
		grid.Size{3, 3},
		[]float64{1, 1},
		1.0,
		[]grid.Index{{1, 1}},
		[]float64{0.0, 1.0},
		[][]float64{{1.0, 0.0}},
	)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("error = %v; want ErrSizeMismatch", err)
	}
}

func TestUnsignedDistance_InvalidIndex(t *testing.T) {
	_, err := UnsignedDistance(
		grid.Size{3, 3},
		[]float64{1, 1},
		1.0,
		[]grid.Index{{5, 5}},
		[]float64{0.0},
		[][]float64{{1.0, 0.0}},
	)
	if !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("error = %v; want ErrInvalidIndex", err)
	}
}

func TestUnsignedDistance_InvalidDistance(t *testing.T) {
	_, err := UnsignedDistance(
		grid.Size{3, 3},
		[]float64{1, 1},
		1.0,
		[]grid.Index{{1, 1}},
		[]float64{math.NaN()},
		[][]float64{{1.0, 0.0}},
	)
	if !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("error = %v; want ErrInvalidDistance", err)
	}
}

func TestSignedDistance_InvalidNormal(t *testing.T) {
	_, err := SignedDistance(
		grid.Size{3, 3},
		[]float64{1, 1},
		1.0,
		[]grid.Index{{1, 1}},
		[]float64{0.0},
		[][]float64{{0.1, 0.1}},
	)
	if !errors.Is(err, ErrInvalidNormal) {
		t.Errorf("error = %v; want ErrInvalidNormal", err)
	}
}

// TestSignedDistance_3D smoke-tests the N=3 path end to end.
func TestSignedDistance_3D(t *testing.T) {
	size := grid.Size{3, 3, 3}
	got, err := SignedDistance(
		size,
		[]float64{1, 1, 1},
		1.0,
		[]grid.Index{{1, 1, 1}},
		[]float64{0.0},
		[][]float64{{1.0, 0.0, 0.0}},
	)
	if err != nil {
		t.Fatalf("SignedDistance: %v", err)
	}
	if len(got) != size.Len() {
		t.Fatalf("len(got) = %d; want %d", len(got), size.Len())
	}
}
