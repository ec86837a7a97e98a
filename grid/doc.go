// Package grid provides a bounded N-dimensional array addressed by signed
// integer coordinates, plus the cell-state enum and neighbor-offset
// generation shared by the eikonal and march packages.
//
// What:
//
//   - Size and Index describe grid extents and cell coordinates as plain
//     int/int32 slices; N is fixed by slice length, not a type parameter.
//   - Grid[T] linearizes an N-dimensional index using row-major-like
//     strides, precomputed once at construction.
//   - CellState tags each cell Far, NarrowBand, or Frozen.
//   - NeighborOffsets returns the 2N axis-aligned unit offsets in the
//     {+e_i, -e_i} pairing the eikonal solver depends on.
//
// Complexity:
//
//   - At/Set/Inside: O(N) per call (N = number of dimensions).
//   - NeighborOffsets: O(N) time and allocation.
//
// Errors:
//
//   - ErrInvalidSize: a requested extent is < 1.
//   - ErrDimensionMismatch: an index's length does not match the grid's.
//   - ErrOutOfBounds: an index lies outside the grid.
package grid
