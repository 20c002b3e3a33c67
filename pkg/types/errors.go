package types

import "errors"

// Outcome errors, returned by Outcome.Err for the non-success kinds.
var (
	ErrMissingFields  = errors.New("missing fields")
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrNotFound       = errors.New("contact not found")
	ErrEmpty          = errors.New("no contacts")
	ErrNoResults      = errors.New("no matching contacts")
	ErrUnknownKind    = errors.New("unknown outcome kind")
)
