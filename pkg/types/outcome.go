package types

import (
	"fmt"
)

// Kind tags which case of a store operation occurred.
type Kind int

// Outcome kinds. KindUnknown is the zero value, carried by the empty Outcome
// a backend returns alongside an error. Every other kind except KindSuccess
// is an expected, recoverable failure that leaves the store unchanged.
const (
	KindUnknown Kind = iota
	KindSuccess
	KindMissingFields
	KindDuplicateEmail
	KindNotFound
	KindEmpty
	KindNoResults
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindSuccess:        "success",
	KindMissingFields:  "missing_fields",
	KindDuplicateEmail: "duplicate_email",
	KindNotFound:       "not_found",
	KindEmpty:          "empty",
	KindNoResults:      "no_results",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText encodes the kind by name so JSON output stays readable.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, text)
}

// Outcome messages shown to the user.
const (
	MsgMissingFields = "Missing fields"
	MsgDuplicate     = "Duplicate was found"
	MsgNotFound      = "Contact not found"
	MsgNoContacts    = "No contacts found"
	MsgCleared       = "The contact list was cleared"
)

// Outcome is the result of a store operation: the kind, a short
// human-readable message, and any contact data the operation produced.
// Contacts holds list and search results. Affected holds the contact that
// add stored or remove deleted.
type Outcome struct {
	Kind     Kind      `json:"kind"`
	Message  string    `json:"message,omitempty"`
	Contacts []Contact `json:"contacts,omitempty"`
	Affected *Contact  `json:"affected,omitempty"`
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// Err returns nil on success and the sentinel error for the kind otherwise.
func (o Outcome) Err() error {
	switch o.Kind {
	case KindSuccess:
		return nil
	case KindMissingFields:
		return ErrMissingFields
	case KindDuplicateEmail:
		return ErrDuplicateEmail
	case KindNotFound:
		return ErrNotFound
	case KindEmpty:
		return ErrEmpty
	case KindNoResults:
		return ErrNoResults
	default:
		return ErrUnknownKind
	}
}

// Text is what a notification shows: the rendered contacts when there are
// any, the message otherwise.
func (o Outcome) Text() string {
	if len(o.Contacts) > 0 {
		return RenderContacts(o.Contacts)
	}
	return o.Message
}

// Added reports a successful add of c.
func Added(c Contact) Outcome {
	return Outcome{Kind: KindSuccess, Message: c.Name + " was added", Affected: &c}
}

// Removed reports a successful remove of c.
func Removed(c Contact) Outcome {
	return Outcome{Kind: KindSuccess, Message: c.Name + " was removed", Affected: &c}
}

// Listed reports a non-empty list or search result.
func Listed(contacts []Contact) Outcome {
	return Outcome{
		Kind:     KindSuccess,
		Message:  fmt.Sprintf("%d contact(s)", len(contacts)),
		Contacts: contacts,
	}
}

// Cleared reports a successful clear.
func Cleared() Outcome {
	return Outcome{Kind: KindSuccess, Message: MsgCleared}
}

// MissingFields reports an add rejected for a missing name or email.
func MissingFields() Outcome {
	return Outcome{Kind: KindMissingFields, Message: MsgMissingFields}
}

// DuplicateEmail reports an add rejected because the email is taken.
func DuplicateEmail() Outcome {
	return Outcome{Kind: KindDuplicateEmail, Message: MsgDuplicate}
}

// NotFound reports a remove for an email that is not stored.
func NotFound() Outcome {
	return Outcome{Kind: KindNotFound, Message: MsgNotFound}
}

// Empty reports a list on a store with no contacts.
func Empty() Outcome {
	return Outcome{Kind: KindEmpty, Message: MsgNoContacts}
}

// NoResults reports a search that matched nothing.
func NoResults() Outcome {
	return Outcome{Kind: KindNoResults, Message: MsgNoContacts}
}
