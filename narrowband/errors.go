package narrowband

import "errors"

// Sentinel errors for NarrowBandStore operations.
var (
	// ErrDuplicateIndex indicates Insert was called with an index already present.
	ErrDuplicateIndex = errors.New("narrowband: index already present")

	// ErrEmpty indicates PopMin was called on an empty store.
	ErrEmpty = errors.New("narrowband: store is empty")

	// ErrNotFound indicates Decrease/IncreaseDistance referenced an absent index.
	ErrNotFound = errors.New("narrowband: index not found")

	// ErrNotDecreased indicates DecreaseDistance's new distance was not smaller
	// than the entry's current distance.
	ErrNotDecreased = errors.New("narrowband: new distance does not decrease existing distance")

	// ErrNotIncreased indicates IncreaseDistance's new distance was not larger
	// than the entry's current distance.
	ErrNotIncreased = errors.New("narrowband: new distance does not increase existing distance")
)
