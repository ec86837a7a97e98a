// Package narrowband implements the indexed min-heap used as the Fast
// Marching Method's narrow band: the frontier of cells adjacent to Frozen
// cells whose distance is still tentative.
//
// What:
//
//   - NarrowBandStore holds (distance, index) entries ordered as a binary
//     min-heap over distance, with a side map from linear grid index to
//     current heap position so that a specific entry can be located in
//     O(1) and its distance updated in O(log n).
//
// Why:
//
//   - The march driver repeatedly needs the globally smallest tentative
//     distance (Pop) and needs to tighten a cell's distance in place when
//     a better path is found (DecreaseDistance), without re-scanning the
//     whole band.
//
// Built on container/heap, the corpus's own heap idiom (see
// dijkstra.nodePQ, prim_kruskal's edgePQ); the side map is maintained
// inside Swap/Push/Pop so heap.Fix can relocate an arbitrary entry.
//
// Complexity: Insert, PopMin, DecreaseDistance, IncreaseDistance are all
// O(log n); Empty is O(1).
//
// Errors:
//
//   - ErrDuplicateIndex: Insert called with an index already present.
//   - ErrEmpty: PopMin called on an empty store.
//   - ErrNotFound: Decrease/IncreaseDistance called with an absent index.
//   - ErrNotDecreased: DecreaseDistance's new distance isn't smaller.
//   - ErrNotIncreased: IncreaseDistance's new distance isn't larger.
package narrowband
