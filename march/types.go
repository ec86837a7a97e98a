package march

import "github.com/katalvlaran/fastmarch/grid"

// Source describes one frozen input cell: its grid index, its prescribed
// signed distance, and the interface normal used to choose which side of
// the interface it emits toward during seeding.
type Source struct {
	Index    grid.Index
	Distance float64
	Normal   []float64
}

// SidePredicate decides whether a source's neighbor offset should be
// admitted during narrow-band seeding: it holds when offset . normal (or
// its sign-flipped variant) is >= 0.
type SidePredicate func(normal []float64, offset grid.Index) bool

// OutsideSidePredicate admits a neighbor offset when it points into the
// half-space the normal points toward (offset . normal >= 0).
func OutsideSidePredicate(normal []float64, offset grid.Index) bool {
	return dot(normal, offset) >= 0
}

// InsideSidePredicate admits a neighbor offset when it points into the
// half-space opposite the normal (-offset . normal >= 0, equivalently
// offset . normal <= 0).
func InsideSidePredicate(normal []float64, offset grid.Index) bool {
	return dot(normal, offset) <= 0
}

func dot(normal []float64, offset grid.Index) float64 {
	sum := 0.0
	for i, n := range normal {
		sum += n * float64(offset[i])
	}

	return sum
}
