// Package contacts implements the in-memory ContactStore.
//
// A Store is not safe for concurrent use. Wrap it with NewLocked when more
// than one goroutine can reach it.
package contacts

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Compile-time interface check.
var _ types.ContactStore = (*Store)(nil)

// Store keeps contacts in a slice in insertion order. Every operation is a
// linear scan over the slice; none of them fail with an error.
type Store struct {
	contacts []types.Contact
	strict   bool
}

// Option configures a Store.
type Option func(*Store)

// WithStrictFields makes Add treat a whitespace-only name or email as
// missing. Stored values are never trimmed.
func WithStrictFields() Option {
	return func(s *Store) { s.strict = true }
}

// New returns a Store holding a copy of seed. The seed must satisfy the
// store invariants; otherwise the error wraps types.ErrInvalidSeed.
func New(seed []types.Contact, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if err := types.ValidateSeed(seed, s.strict); err != nil {
		return nil, fmt.Errorf("new store: %w", err)
	}
	s.contacts = slices.Clone(seed)
	return s, nil
}

// Add appends c unless a required field is missing or the email is taken.
func (s *Store) Add(c types.Contact) (types.Outcome, error) {
	if !c.HasRequired(s.strict) {
		return types.MissingFields(), nil
	}
	if s.indexOf(c.Email) >= 0 {
		return types.DuplicateEmail(), nil
	}
	s.contacts = append(s.contacts, c)
	return types.Added(c), nil
}

// Remove deletes the contact with the given email.
func (s *Store) Remove(email string) (types.Outcome, error) {
	i := s.indexOf(email)
	if i < 0 {
		return types.NotFound(), nil
	}
	removed := s.contacts[i]
	s.contacts = slices.Delete(s.contacts, i, i+1)
	return types.Removed(removed), nil
}

// List returns a copy of every contact.
func (s *Store) List() (types.Outcome, error) {
	if len(s.contacts) == 0 {
		return types.Empty(), nil
	}
	return types.Listed(slices.Clone(s.contacts)), nil
}

// Search returns the contacts matching query, in insertion order.
func (s *Store) Search(query string) (types.Outcome, error) {
	var results []types.Contact
	for _, c := range s.contacts {
		if c.Matches(query) {
			results = append(results, c)
		}
	}
	if len(results) == 0 {
		return types.NoResults(), nil
	}
	return types.Listed(results), nil
}

// Clear drops every contact.
func (s *Store) Clear() (types.Outcome, error) {
	s.contacts = nil
	return types.Cleared(), nil
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close() error {
	return nil
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// Snapshot returns a copy of the stored contacts.
func (s *Store) Snapshot() []types.Contact {
	return slices.Clone(s.contacts)
}

func (s *Store) indexOf(email string) int {
	return slices.IndexFunc(s.contacts, func(c types.Contact) bool {
		return c.Email == email
	})
}
