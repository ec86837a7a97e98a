package march

import "errors"

// Sentinel errors for march driver operations.
var (
	// ErrSeedEmpty indicates the narrow band is empty after one
	// SeedNarrowBand call has processed every source, implying no valid
	// propagation direction exists on that side.
	ErrSeedEmpty = errors.New("march: narrow band is empty after seeding")

	// ErrInternalSolveFailure indicates the eikonal solver returned NaN
	// during a march. This is a programmer error: it must not occur in a
	// valid run, and the march loop aborts rather than propagate NaN.
	ErrInternalSolveFailure = errors.New("march: eikonal solver returned an unsolvable quadratic")
)
