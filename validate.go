package fastmarch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fastmarch/grid"
)

// validateCommon checks the parameters shared by UnsignedDistance and
// SignedDistance, in the order the Errors section lists them: size,
// spacing, speed, parallel-slice length, index bounds, then distance
// NaN-ness. Normal validation is the caller's responsibility, since only
// SignedDistance requires it.
func validateCommon(
	size grid.Size,
	dx []float64,
	speed float64,
	frozenIndices []grid.Index,
	frozenDistances []float64,
	normals [][]float64,
) error {
	for i, v := range size {
		if v < 1 {
			return fmt.Errorf("%w: size[%d] = %d", ErrInvalidSize, i, v)
		}
	}
	for i, v := range dx {
		if v <= 0 {
			return fmt.Errorf("%w: dx[%d] = %v", ErrInvalidSpacing, i, v)
		}
	}
	if speed <= 0 {
		return fmt.Errorf("%w: speed = %v", ErrInvalidSpeed, speed)
	}
	if len(frozenIndices) != len(frozenDistances) || len(frozenIndices) != len(normals) {
		return fmt.Errorf(
			"%w: got %d indices, %d distances, %d normals",
			ErrSizeMismatch, len(frozenIndices), len(frozenDistances), len(normals),
		)
	}
	for k, idx := range frozenIndices {
		if !size.Inside(idx) {
			return fmt.Errorf("%w: frozenIndices[%d] = %v", ErrInvalidIndex, k, idx)
		}
	}
	for k, d := range frozenDistances {
		if math.IsNaN(d) {
			return fmt.Errorf("%w: frozenDistances[%d]", ErrInvalidDistance, k)
		}
	}

	return nil
}

// validateNormals checks that every normal has squared magnitude >=
// 0.25, as SignedDistance requires to pick a well-defined propagation
// side.
func validateNormals(normals [][]float64) error {
	for k, normal := range normals {
		var sq float64
		for _, c := range normal {
			sq += c * c
		}
		if sq < 0.25 {
			return fmt.Errorf("%w: normals[%d] has squared magnitude %v", ErrInvalidNormal, k, sq)
		}
	}

	return nil
}
