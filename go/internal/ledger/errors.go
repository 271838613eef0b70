package ledger

import "errors"

// Validation errors returned by mutating ledger operations. Invalid input
// is reported to the caller, never silently dropped.
var (
	ErrNilPlayer      = errors.New("player is required")
	ErrInvalidCost    = errors.New("cost must be a positive integer")
	ErrUnknownTeam    = errors.New("unknown team id")
	ErrUnknownSlot    = errors.New("unknown roster slot")
	ErrUnknownSession = errors.New("unknown session")
	ErrEmptyName      = errors.New("team name is required")
)
