// Package fastmarch is an in-memory Fast Marching Method engine for
// solving the Eikonal equation |grad u(x)| * F(x) = 1 on a regular
// N-dimensional Cartesian grid.
//
// 🚀 What is fastmarch?
//
//	A pure-Go numerical kernel that propagates distance outward from a
//	set of frozen source cells, using:
//		• An indexed narrow-band min-heap for O(log n) decrease-key
//		• A local quadratic update solved per cell from frozen neighbors
//		• Unsigned and signed distance field outputs
//
// ✨ Why choose fastmarch?
//
//   - Dimension-agnostic – N is a runtime parameter, not a type parameter
//   - Pure Go – no cgo, only testify pulled in for tests
//   - In-memory, no I/O – arrays in, arrays out
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/       — Grid, Size, Index, CellState, neighbor-offset generation
//	narrowband/ — NarrowBandStore, the indexed min-heap
//	eikonal/    — Solver, the local quadratic Eikonal update
//	march/      — the driver: InitializeFrozen, SeedNarrowBand, March
//
// The module root exposes the two public entry points, UnsignedDistance
// and SignedDistance. Install with:
//
//	go get github.com/katalvlaran/fastmarch
package fastmarch
