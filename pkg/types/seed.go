package types

import "fmt"

// DefaultSeed returns the demo contacts a new session starts with. Each call
// returns a fresh slice, so callers may modify the result freely.
func DefaultSeed() []Contact {
	return []Contact{
		{Name: "John Doe", Email: "john@example.com", PhoneNumber: "1234567", Company: "ABC Corp"},
		{Name: "Jane Smith", Email: "jane@example.com", PhoneNumber: "2345678", Company: "XYZ Inc"},
		{Name: "Alice Johnson", Email: "alice@example.com", PhoneNumber: "3456789", Company: "123 LLC"},
		{Name: "Bob Brown", Email: "bob@example.com", PhoneNumber: "4567890", Company: "456 Co"},
	}
}

// ValidateSeed checks that seed satisfies the store invariants: every contact
// has a name and an email, and no email appears twice. The error wraps
// ErrInvalidSeed and names the offending position.
func ValidateSeed(seed []Contact, strict bool) error {
	seen := make(map[string]int, len(seed))
	for i, c := range seed {
		if !c.HasRequired(strict) {
			return fmt.Errorf("%w: contact %d: %w", ErrInvalidSeed, i, ErrMissingFields)
		}
		if j, ok := seen[c.Email]; ok {
			return fmt.Errorf("%w: contact %d: email %q already used by contact %d: %w",
				ErrInvalidSeed, i, c.Email, j, ErrDuplicateEmail)
		}
		seen[c.Email] = i
	}
	return nil
}
