package narrowband

import (
	"container/heap"
	"fmt"
)

// item is a single (distance, index) narrow-band entry.
type item struct {
	distance float64
	index    int
}

// indexedHeap implements heap.Interface over []item while keeping pos in
// sync with every Swap/Push/Pop, so that a stored index can be relocated
// in O(1) and fixed up in O(log n) via heap.Fix.
type indexedHeap struct {
	items []item
	pos   map[int]int // grid linear index -> position in items
}

func (h *indexedHeap) Len() int { return len(h.items) }

func (h *indexedHeap) Less(i, j int) bool { return h.items[i].distance < h.items[j].distance }

func (h *indexedHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].index] = i
	h.pos[h.items[j].index] = j
}

func (h *indexedHeap) Push(x interface{}) {
	it := x.(item)
	h.pos[it.index] = len(h.items)
	h.items = append(h.items, it)
}

func (h *indexedHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	delete(h.pos, it.index)

	return it
}

// NarrowBandStore is the indexed min-heap described in the package doc.
// The zero value is not usable; construct with New.
type NarrowBandStore struct {
	h *indexedHeap
}

// New returns an empty NarrowBandStore.
func New() *NarrowBandStore {
	return &NarrowBandStore{h: &indexedHeap{pos: make(map[int]int)}}
}

// Empty reports whether the store holds zero entries.
func (s *NarrowBandStore) Empty() bool {
	return s.h.Len() == 0
}

// Len reports the number of entries currently held.
func (s *NarrowBandStore) Len() int {
	return s.h.Len()
}

// Insert adds a new (distance, index) entry. Returns ErrDuplicateIndex if
// index is already present.
func (s *NarrowBandStore) Insert(distance float64, index int) error {
	if _, ok := s.h.pos[index]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateIndex, index)
	}
	heap.Push(s.h, item{distance: distance, index: index})

	return nil
}

// PopMin removes and returns the entry with the smallest distance.
// Returns ErrEmpty if the store holds no entries.
func (s *NarrowBandStore) PopMin() (distance float64, index int, err error) {
	if s.Empty() {
		return 0, 0, ErrEmpty
	}
	it := heap.Pop(s.h).(item)

	return it.distance, it.index, nil
}

// DecreaseDistance lowers the stored distance for index. Returns
// ErrNotFound if index is absent, ErrNotDecreased if newDistance is not
// strictly smaller than the entry's current distance.
func (s *NarrowBandStore) DecreaseDistance(index int, newDistance float64) error {
	pos, ok := s.h.pos[index]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, index)
	}
	if newDistance >= s.h.items[pos].distance {
		return fmt.Errorf("%w: %d", ErrNotDecreased, index)
	}
	s.h.items[pos].distance = newDistance
	heap.Fix(s.h, pos)

	return nil
}

// IncreaseDistance raises the stored distance for index. Returns
// ErrNotFound if index is absent, ErrNotIncreased if newDistance is not
// strictly larger than the entry's current distance.
func (s *NarrowBandStore) IncreaseDistance(index int, newDistance float64) error {
	pos, ok := s.h.pos[index]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, index)
	}
	if newDistance <= s.h.items[pos].distance {
		return fmt.Errorf("%w: %d", ErrNotIncreased, index)
	}
	s.h.items[pos].distance = newDistance
	heap.Fix(s.h, pos)

	return nil
}

// checkInvariant verifies the heap-order and side-map-consistency
// properties. Exercised only from within this package's tests.
func (s *NarrowBandStore) checkInvariant() error {
	n := len(s.h.items)
	if n != len(s.h.pos) {
		return fmt.Errorf("narrowband: len(items)=%d != len(pos)=%d", n, len(s.h.pos))
	}
	for i, it := range s.h.items {
		if p, ok := s.h.pos[it.index]; !ok || p != i {
			return fmt.Errorf("narrowband: pos[%d] = %d, %v; want %d, true", it.index, p, ok, i)
		}
		if i == 0 {
			continue
		}
		parent := (i - 1) / 2
		if s.h.items[i].distance < s.h.items[parent].distance {
			return fmt.Errorf("narrowband: heap violation at %d: %v < parent %v", i, s.h.items[i], s.h.items[parent])
		}
	}

	return nil
}
