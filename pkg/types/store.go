package types

import "errors"

// ContactStore is an ordered collection of contacts keyed by email.
// Implementations keep three invariants: no two contacts share an email,
// no contact is stored without a name and an email, and contacts are listed
// in insertion order.
//
// Expected cases (duplicate, not found, empty, ...) are reported through the
// returned Outcome. The error return is reserved for backend failures; the
// in-memory store never returns one.
type ContactStore interface {
	// Add appends c. Returns a MissingFields outcome when name or email is
	// empty and a DuplicateEmail outcome when the email is taken; in both
	// cases the store is left unchanged.
	Add(c Contact) (Outcome, error)

	// Remove deletes the contact with the given email, preserving the order
	// of the rest. Returns a NotFound outcome when no contact matches.
	Remove(email string) (Outcome, error)

	// List returns every contact in insertion order, or an Empty outcome.
	List() (Outcome, error)

	// Search returns every contact with a field containing query, compared
	// case-insensitively, or a NoResults outcome.
	Search(query string) (Outcome, error)

	// Clear removes every contact. It always succeeds.
	Clear() (Outcome, error)

	// Close releases backend resources. Idempotent.
	Close() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrInvalidSeed     = errors.New("invalid seed contact")
)
