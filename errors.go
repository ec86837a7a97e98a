package fastmarch

import "errors"

// Sentinel errors for input validation, checked in this order before
// any march begins.
var (
	// ErrInvalidSize indicates size[i] < 1 for some axis i.
	ErrInvalidSize = errors.New("fastmarch: all size extents must be >= 1")

	// ErrInvalidSpacing indicates dx[i] <= 0 for some axis i.
	ErrInvalidSpacing = errors.New("fastmarch: all dx extents must be > 0")

	// ErrInvalidSpeed indicates speed <= 0.
	ErrInvalidSpeed = errors.New("fastmarch: speed must be > 0")

	// ErrSizeMismatch indicates frozenIndices, frozenDistances, and
	// normals disagree in length.
	ErrSizeMismatch = errors.New("fastmarch: frozenIndices, frozenDistances, and normals must have equal length")

	// ErrInvalidIndex indicates a source index lies outside the grid.
	ErrInvalidIndex = errors.New("fastmarch: source index outside grid")

	// ErrInvalidDistance indicates a source distance is NaN.
	ErrInvalidDistance = errors.New("fastmarch: source distance must not be NaN")

	// ErrInvalidNormal indicates a normal's squared magnitude is below
	// 0.25; only checked by SignedDistance.
	ErrInvalidNormal = errors.New("fastmarch: normal squared magnitude must be >= 0.25")
)
