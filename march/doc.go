// Package march implements the narrow-band state machine that drives a
// single Fast Marching Method propagation: initializing frozen source
// cells, seeding the narrow band from them under a normal-orientation
// predicate, and then repeatedly popping the minimum-distance cell,
// freezing it, and relaxing its neighbors until the band is empty.
//
// What:
//
//   - InitializeFrozen writes the source cells' prescribed distances
//     (scaled by a +1/-1 multiplier) and marks them Frozen.
//   - SeedNarrowBand relaxes each source's normal-gated neighbors into a
//     fresh NarrowBandStore.
//   - March pops the globally smallest tentative cell, freezes it, and
//     relaxes all of its neighbors unconditionally.
//
// Why: this is the outward-propagation loop itself — the piece that ties
// grid, narrowband, and eikonal together under the cell-state invariants
// (Far -> NarrowBand -> Frozen, Frozen terminal) that make the whole
// algorithm correct.
//
// Complexity: March is O(n log n) for n = total cells, dominated by
// narrow-band heap operations.
//
// Errors:
//
//   - ErrSeedEmpty: the narrow band is empty after seeding.
//   - ErrInternalSolveFailure: the eikonal solver returned NaN during a
//     march; this is a programmer error, never a user-facing condition.
package march
