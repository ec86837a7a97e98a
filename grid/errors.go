package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a requested extent is less than 1.
	ErrInvalidSize = errors.New("grid: all extents must be >= 1")

	// ErrDimensionMismatch indicates an index's length does not match
	// the grid's number of dimensions.
	ErrDimensionMismatch = errors.New("grid: index dimensionality does not match grid")

	// ErrOutOfBounds indicates an index lies outside the grid.
	ErrOutOfBounds = errors.New("grid: index out of bounds")
)
