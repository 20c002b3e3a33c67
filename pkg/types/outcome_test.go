package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeErr(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		wantErr error
	}{
		{"success", Cleared(), nil},
		{"missing fields", MissingFields(), ErrMissingFields},
		{"duplicate", DuplicateEmail(), ErrDuplicateEmail},
		{"not found", NotFound(), ErrNotFound},
		{"empty", Empty(), ErrEmpty},
		{"no results", NoResults(), ErrNoResults},
		{"unknown kind", Outcome{Kind: Kind(42)}, ErrUnknownKind},
		{"zero value", Outcome{}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Err()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.True(t, tt.outcome.OK())
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.False(t, tt.outcome.OK())
		})
	}
}

func TestOutcomeMessages(t *testing.T) {
	jane := Contact{Name: "Jane Smith", Email: "jane@example.com"}

	assert.Equal(t, "Jane Smith was added", Added(jane).Message)
	assert.Equal(t, "Jane Smith was removed", Removed(jane).Message)
	assert.Equal(t, &jane, Removed(jane).Affected)
	assert.Equal(t, "Missing fields", MissingFields().Text())
	assert.Equal(t, "Duplicate was found", DuplicateEmail().Text())
	assert.Equal(t, "Contact not found", NotFound().Text())
	assert.Equal(t, "No contacts found", Empty().Text())
	assert.Equal(t, "No contacts found", NoResults().Text())
	assert.Equal(t, "The contact list was cleared", Cleared().Text())
	assert.Equal(t, jane.Render(), Listed([]Contact{jane}).Text())
}

func TestOutcomeJSON(t *testing.T) {
	out := Listed([]Contact{{Name: "A", Email: "a@b.com"}})

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"success"`)
	assert.NotContains(t, string(data), "phone_number")

	var back Outcome
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, KindSuccess, back.Kind)
	assert.Equal(t, out.Contacts, back.Contacts)

	_, err = json.Marshal(Outcome{Kind: Kind(99)})
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "duplicate_email", KindDuplicateEmail.String())
	assert.Equal(t, "kind(7)", Kind(7).String())

	var zero Outcome
	assert.Equal(t, KindUnknown, zero.Kind)
	assert.Equal(t, "unknown", zero.Kind.String())

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("no_results")))
	assert.Equal(t, KindNoResults, k)
	assert.ErrorIs(t, k.UnmarshalText([]byte("bogus")), ErrUnknownKind)
}
