package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. The resolution path
// itself never fails (every absence degrades to a valid region); these cover
// the write surfaces around it.

var (
	// Region errors
	ErrUnknownRegion = errors.New("unknown region code")
)
