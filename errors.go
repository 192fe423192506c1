package roomsizer

import "errors"

// Sentinel errors returned by the constructors and the calculator. Wrapped
// values carry the offending detail; match with errors.Is.
var (
	// ErrInvalidDimension reports a dimension that is not strictly positive,
	// or not a finite number.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrImplausibleOpening reports an opening that cannot exist in the room
	// it is added to: taller than the room or wider than the shorter wall.
	ErrImplausibleOpening = errors.New("implausible opening")

	// ErrOpeningAreaExceedsWall reports that the openings' combined area
	// meets or exceeds the room's gross wall area.
	ErrOpeningAreaExceedsWall = errors.New("opening area exceeds wall area")

	// ErrRollTooShort reports a roll too short to yield a single full strip.
	ErrRollTooShort = errors.New("roll too short for a single strip")

	// ErrInvalidWastePolicy reports a waste policy with a negative drop
	// allowance or an extra factor below 1.
	ErrInvalidWastePolicy = errors.New("invalid waste policy")
)
