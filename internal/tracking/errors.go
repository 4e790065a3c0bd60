package tracking

import "errors"

var (
	// ErrNoFix is returned by a LocationProvider that cannot produce a fix.
	ErrNoFix = errors.New("location provider unavailable")

	// ErrShareActive rejects a second live-share session while one is active.
	ErrShareActive = errors.New("a live share session is already active")

	// ErrSosFailed means no emergency channel could be opened.
	ErrSosFailed = errors.New("no emergency channel could be opened")
)
