// Package eikonal implements the local quadratic update at the heart of
// the Fast Marching Method: given a target cell and the current
// distance/state grids, it computes the candidate arrival distance by
// solving the 1-D, 2-D, or N-D quadratic built from frozen axis
// neighbors.
//
// What:
//
//   - Solver precomputes 1/dx[i]^2 and 1/speed^2 at construction.
//   - Solve accumulates quadratic coefficients (c, b, a) from the
//     minimum Frozen neighbor distance on each axis, then solves for the
//     larger root via the numerically stable quadratic formula.
//
// Why: the discretized Eikonal equation |grad u| * F = 1, expanded with
// one-sided upwind differences per axis, reduces exactly to a quadratic
// in u; solving it in closed form avoids any iterative root-finding in
// the march loop's hot path.
//
// Complexity: Solve is O(N) per call.
//
// Failure mode: Solve returns math.NaN() when the quadratic has no real,
// physically meaningful root (a == 0 and b == 0, or a negative
// discriminant). This must not occur during a valid march — callers
// treat it as an internal invariant violation, never as a value to
// propagate into the grid.
package eikonal
