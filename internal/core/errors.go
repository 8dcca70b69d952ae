package core

import "errors"

// Validation errors are returned before any mutation; the snapshot the
// caller holds is untouched when one of these comes back.
var (
	ErrNoWeekdays    = errors.New("series needs at least one weekday")
	ErrBadWeekday    = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrNoOccurrences = errors.New("series must generate at least one occurrence")
	ErrBadDuration   = errors.New("duration must be a positive number of minutes")
	ErrBadSubject    = errors.New("exactly one of member or group must be set, matching the series type")

	// ErrRuleTooSparse means the walk hit the expansion ceiling before
	// producing the requested occurrences. Distinct from plain validation
	// so callers can tell malformed input from an out-of-range rule.
	ErrRuleTooSparse = errors.New("series rule produces no occurrences within the next 10 years")

	ErrEventNotFound = errors.New("event not found")
	ErrNotScheduled  = errors.New("event is no longer scheduled")
)
