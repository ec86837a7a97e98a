package eikonal

import (
	"math"

	"github.com/katalvlaran/fastmarch/grid"
)

// quadraticEps is the tolerance used when classifying the quadratic
// coefficients as degenerate, matching the reference implementation's
// 1e-9 threshold in double precision.
const quadraticEps = 1e-9

// Solver computes the Eikonal arrival distance at a cell from its frozen
// axis neighbors, under constant speed F and per-axis spacing dx. The
// zero value is not usable; construct with NewSolver.
type Solver struct {
	invDxSq    []float64
	invSpeedSq float64
}

// NewSolver precomputes 1/dx[i]^2 for every axis and 1/speed^2. Callers
// (package fastmarch) are responsible for validating speed > 0 and every
// dx[i] > 0 before construction.
func NewSolver(dx []float64, speed float64) *Solver {
	invDxSq := make([]float64, len(dx))
	for i, d := range dx {
		invDxSq[i] = 1 / (d * d)
	}

	return &Solver{invDxSq: invDxSq, invSpeedSq: 1 / (speed * speed)}
}

// Solve returns the arrival distance at index, built from the minimum
// Frozen neighbor on each axis in distance/state. Returns math.NaN() if
// no real, physically meaningful root exists.
func (s *Solver) Solve(
	index grid.Index,
	neighborOffsets []grid.Index,
	distance *grid.Grid[float64],
	state *grid.Grid[grid.CellState],
) float64 {
	c, b, a := -s.invSpeedSq, 0.0, 0.0

	for i := range s.invDxSq {
		minFrozen := math.MaxFloat64
		for j := 0; j < 2; j++ {
			neighborIdx := index.Add(neighborOffsets[2*i+j])
			if !distance.Inside(neighborIdx) {
				continue
			}
			st, err := state.At(neighborIdx)
			if err != nil || st != grid.Frozen {
				continue
			}
			d, err := distance.At(neighborIdx)
			if err != nil {
				continue
			}
			if d < minFrozen {
				minFrozen = d
			}
		}

		if minFrozen < math.MaxFloat64 {
			c += minFrozen * minFrozen * s.invDxSq[i]
			b += -2 * minFrozen * s.invDxSq[i]
			a += s.invDxSq[i]
		}
	}

	return solveQuadratic(a, b, c)
}

// solveQuadratic solves a*u^2 + b*u + c = 0 for the larger real root,
// using the numerically stable formulation that avoids catastrophic
// cancellation. Returns math.NaN() if no real root exists.
func solveQuadratic(a, b, c float64) float64 {
	if math.Abs(a) < quadraticEps {
		if math.Abs(b) < quadraticEps {
			return math.NaN()
		}
		// Linear case: bu + c = 0.
		return -c / b
	}

	if math.Abs(b) < quadraticEps {
		// au^2 + c = 0.
		return math.Sqrt(-c / a)
	}

	discriminant := b*b - 4*a*c
	if discriminant <= quadraticEps {
		return math.NaN()
	}
	sqrtD := math.Sqrt(discriminant)

	var r0 float64
	if b < 0 {
		r0 = (-b + sqrtD) / (2 * a)
	} else {
		r0 = (-b - sqrtD) / (2 * a)
	}
	r1 := c / (a * r0)

	return math.Max(r0, r1)
}
