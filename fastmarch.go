package fastmarch

import (
	"math"

	"github.com/katalvlaran/fastmarch/eikonal"
	"github.com/katalvlaran/fastmarch/grid"
	"github.com/katalvlaran/fastmarch/march"
)

// buildSources zips the parallel frozenIndices/frozenDistances/normals
// slices into the march package's bundled Source representation.
func buildSources(frozenIndices []grid.Index, frozenDistances []float64, normals [][]float64) []march.Source {
	sources := make([]march.Source, len(frozenIndices))
	for k := range frozenIndices {
		sources[k] = march.Source{
			Index:    frozenIndices[k],
			Distance: frozenDistances[k],
			Normal:   normals[k],
		}
	}

	return sources
}

// runMarch drives one inside-or-outside march into distance/state:
// freeze the sources, seed the narrow band on the side pred admits, and
// march it to completion. multiplier is -1 for the inside march, +1 for
// the outside march.
func runMarch(
	solver *eikonal.Solver,
	offsets []grid.Index,
	sources []march.Source,
	multiplier float64,
	pred march.SidePredicate,
	distance *grid.Grid[float64],
	state *grid.Grid[grid.CellState],
) error {
	if err := march.InitializeFrozen(sources, multiplier, distance, state); err != nil {
		return err
	}
	nb, err := march.SeedNarrowBand(solver, sources, offsets, pred, distance, state)
	if err != nil {
		return err
	}

	return march.March(solver, offsets, distance, state, nb)
}

// UnsignedDistance runs an inside march and an outside march into a
// single distance grid initialized to math.MaxFloat64 (the "not yet
// computed" sentinel), then overwrites every source
// cell with the absolute value of its prescribed distance. Unreachable
// cells remain at math.MaxFloat64.
func UnsignedDistance(
	size grid.Size,
	dx []float64,
	speed float64,
	frozenIndices []grid.Index,
	frozenDistances []float64,
	normals [][]float64,
) ([]float64, error) {
	if err := validateCommon(size, dx, speed, frozenIndices, frozenDistances, normals); err != nil {
		return nil, err
	}

	distance, err := grid.New[float64](size, math.MaxFloat64)
	if err != nil {
		return nil, err
	}
	state, err := grid.New[grid.CellState](size, grid.Far)
	if err != nil {
		return nil, err
	}

	solver := eikonal.NewSolver(dx, speed)
	offsets := grid.NeighborOffsets(size.Dims())
	sources := buildSources(frozenIndices, frozenDistances, normals)

	if err := runMarch(solver, offsets, sources, -1, march.InsideSidePredicate, distance, state); err != nil {
		return nil, err
	}
	if err := runMarch(solver, offsets, sources, 1, march.OutsideSidePredicate, distance, state); err != nil {
		return nil, err
	}

	for k, idx := range frozenIndices {
		if err := distance.Set(idx, math.Abs(frozenDistances[k])); err != nil {
			return nil, err
		}
	}

	out := make([]float64, len(distance.Cells()))
	copy(out, distance.Cells())

	return out, nil
}

// SignedDistance runs an inside march and an outside march into two
// separate distance grids that share a single state grid (mirroring the
// reference implementation's reuse of state across both marches), then
// merges them: negative inside wins, positive outside otherwise, +Inf
// where neither reached. Source cells are overwritten with the signed
// distance as provided.
func SignedDistance(
	size grid.Size,
	dx []float64,
	speed float64,
	frozenIndices []grid.Index,
	frozenDistances []float64,
	normals [][]float64,
) ([]float64, error) {
	if err := validateCommon(size, dx, speed, frozenIndices, frozenDistances, normals); err != nil {
		return nil, err
	}
	if err := validateNormals(normals); err != nil {
		return nil, err
	}

	state, err := grid.New[grid.CellState](size, grid.Far)
	if err != nil {
		return nil, err
	}
	insideDistance, err := grid.New[float64](size, math.MaxFloat64)
	if err != nil {
		return nil, err
	}
	outsideDistance, err := grid.New[float64](size, math.MaxFloat64)
	if err != nil {
		return nil, err
	}

	solver := eikonal.NewSolver(dx, speed)
	offsets := grid.NeighborOffsets(size.Dims())
	sources := buildSources(frozenIndices, frozenDistances, normals)

	if err := runMarch(solver, offsets, sources, -1, march.InsideSidePredicate, insideDistance, state); err != nil {
		return nil, err
	}
	if err := runMarch(solver, offsets, sources, 1, march.OutsideSidePredicate, outsideDistance, state); err != nil {
		return nil, err
	}

	out := make([]float64, size.Len())
	for i := range out {
		out[i] = math.MaxFloat64
	}
	for i, d := range insideDistance.Cells() {
		if d < math.MaxFloat64 {
			out[i] = -d
		}
	}
	for i, d := range outsideDistance.Cells() {
		if d < math.MaxFloat64 && out[i] == math.MaxFloat64 {
			out[i] = d
		}
	}

	for k, idx := range frozenIndices {
		lin, err := insideDistance.LinearIndex(idx)
		if err != nil {
			return nil, err
		}
		out[lin] = frozenDistances[k]
	}

	return out, nil
}
