package march

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fastmarch/eikonal"
	"github.com/katalvlaran/fastmarch/grid"
	"github.com/katalvlaran/fastmarch/narrowband"
)

// InitializeFrozen writes distance[k] = multiplier * sources[k].Distance
// for every source and marks its cell Frozen. Pass multiplier = -1 for
// the inside march and +1 for the outside march.
func InitializeFrozen(
	sources []Source,
	multiplier float64,
	distance *grid.Grid[float64],
	state *grid.Grid[grid.CellState],
) error {
	for _, src := range sources {
		if err := distance.Set(src.Index, multiplier*src.Distance); err != nil {
			return fmt.Errorf("march: initialize frozen cell %v: %w", src.Index, err)
		}
		if err := state.Set(src.Index, grid.Frozen); err != nil {
			return fmt.Errorf("march: initialize frozen cell %v: %w", src.Index, err)
		}
	}

	return nil
}

// SeedNarrowBand relaxes every source's normal-gated neighbors into a
// fresh NarrowBandStore. Returns ErrSeedEmpty if the resulting band is
// empty, which implies no source admitted any propagation direction.
func SeedNarrowBand(
	solver *eikonal.Solver,
	sources []Source,
	neighborOffsets []grid.Index,
	pred SidePredicate,
	distance *grid.Grid[float64],
	state *grid.Grid[grid.CellState],
) (*narrowband.NarrowBandStore, error) {
	nb := narrowband.New()

	for _, src := range sources {
		for _, offset := range neighborOffsets {
			if !pred(src.Normal, offset) {
				continue
			}
			neighborIdx := src.Index.Add(offset)
			if err := relax(neighborIdx, solver, neighborOffsets, distance, state, nb); err != nil {
				return nil, err
			}
		}
	}

	if nb.Empty() {
		return nil, ErrSeedEmpty
	}

	return nb, nil
}

// March repeatedly pops the minimum-distance narrow-band cell, freezes
// it, and relaxes all of its neighbors unconditionally, until the band
// is empty.
func March(
	solver *eikonal.Solver,
	neighborOffsets []grid.Index,
	distance *grid.Grid[float64],
	state *grid.Grid[grid.CellState],
	nb *narrowband.NarrowBandStore,
) error {
	for !nb.Empty() {
		d, lin, err := nb.PopMin()
		if err != nil {
			return fmt.Errorf("march: pop during march: %w", err)
		}

		idx := distance.IndexOf(lin)
		st, err := state.At(idx)
		if err != nil {
			return fmt.Errorf("march: read state at %v: %w", idx, err)
		}
		if st != grid.NarrowBand {
			return fmt.Errorf("march: cell %v popped with state %v, want NarrowBand", idx, st)
		}

		if err := distance.Set(idx, d); err != nil {
			return err
		}
		if err := state.Set(idx, grid.Frozen); err != nil {
			return err
		}

		for _, offset := range neighborOffsets {
			neighborIdx := idx.Add(offset)
			if err := relax(neighborIdx, solver, neighborOffsets, distance, state, nb); err != nil {
				return err
			}
		}
	}

	return nil
}

// relax attempts to tighten neighborIdx's tentative distance from a
// newly frozen neighbor, transitioning it Far -> NarrowBand on first
// contact or tightening an existing NarrowBand entry. Frozen neighbors
// and out-of-bounds indices are skipped.
func relax(
	neighborIdx grid.Index,
	solver *eikonal.Solver,
	neighborOffsets []grid.Index,
	distance *grid.Grid[float64],
	state *grid.Grid[grid.CellState],
	nb *narrowband.NarrowBandStore,
) error {
	if !distance.Inside(neighborIdx) {
		return nil
	}

	st, err := state.At(neighborIdx)
	if err != nil {
		return err
	}

	switch st {
	case grid.Frozen:
		return nil

	case grid.Far:
		d := solver.Solve(neighborIdx, neighborOffsets, distance, state)
		if math.IsNaN(d) {
			return fmt.Errorf("%w: cell %v", ErrInternalSolveFailure, neighborIdx)
		}
		if err := distance.Set(neighborIdx, d); err != nil {
			return err
		}
		if err := state.Set(neighborIdx, grid.NarrowBand); err != nil {
			return err
		}
		lin, err := distance.LinearIndex(neighborIdx)
		if err != nil {
			return err
		}

		return nb.Insert(d, lin)

	case grid.NarrowBand:
		newD := solver.Solve(neighborIdx, neighborOffsets, distance, state)
		if math.IsNaN(newD) {
			return fmt.Errorf("%w: cell %v", ErrInternalSolveFailure, neighborIdx)
		}
		curD, err := distance.At(neighborIdx)
		if err != nil {
			return err
		}
		if newD >= curD {
			return nil
		}
		lin, err := distance.LinearIndex(neighborIdx)
		if err != nil {
			return err
		}
		if err := nb.DecreaseDistance(lin, newD); err != nil {
			return err
		}

		return distance.Set(neighborIdx, newD)

	default:
		return fmt.Errorf("march: cell %v has unknown state %v", neighborIdx, st)
	}
}
