// Package storetest holds the behavioural checks every ContactStore
// implementation must pass. Backend packages call Run from their tests.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Factory builds a store holding seed. Implementations register cleanup with
// t themselves.
type Factory func(t *testing.T, seed []types.Contact) types.ContactStore

// Run executes the conformance suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("add then list", func(t *testing.T) { testAddThenList(t, newStore) })
	t.Run("add missing fields", func(t *testing.T) { testAddMissingFields(t, newStore) })
	t.Run("add duplicate email", func(t *testing.T) { testAddDuplicate(t, newStore) })
	t.Run("email match is case-sensitive", func(t *testing.T) { testEmailCaseSensitive(t, newStore) })
	t.Run("remove not found", func(t *testing.T) { testRemoveNotFound(t, newStore) })
	t.Run("add then remove restores content", func(t *testing.T) { testAddRemoveRoundTrip(t, newStore) })
	t.Run("search", func(t *testing.T) { testSearch(t, newStore) })
	t.Run("clear", func(t *testing.T) { testClear(t, newStore) })
	t.Run("seed scenario", func(t *testing.T) { testSeedScenario(t, newStore) })
	t.Run("seed is not mutated", func(t *testing.T) { testSeedUntouched(t, newStore) })
}

// Contents returns the store's contacts via List, or nil when it is empty.
func Contents(t *testing.T, s types.ContactStore) []types.Contact {
	t.Helper()
	out, err := s.List()
	require.NoError(t, err)
	if out.Kind == types.KindEmpty {
		return nil
	}
	require.Equal(t, types.KindSuccess, out.Kind)
	return out.Contacts
}

func testAddThenList(t *testing.T, newStore Factory) {
	s := newStore(t, nil)

	out, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, types.KindEmpty, out.Kind)

	c := types.Contact{Name: "Ann", Email: "ann@example.com"}
	out, err = s.Add(c)
	require.NoError(t, err)
	assert.Equal(t, types.KindSuccess, out.Kind)
	assert.Equal(t, "Ann was added", out.Message)

	out, err = s.List()
	require.NoError(t, err)
	require.Equal(t, types.KindSuccess, out.Kind)
	require.Len(t, out.Contacts, 1)
	assert.Equal(t, c, out.Contacts[0])
	assert.Equal(t, "Name: Ann\nEmail: ann@example.com\nPhone number: N/A\nCompany: N/A", out.Text())
}

func testAddMissingFields(t *testing.T, newStore Factory) {
	s := newStore(t, types.DefaultSeed())
	before := Contents(t, s)

	for _, c := range []types.Contact{
		{Name: "", Email: "a@b.com"},
		{Name: "A", Email: ""},
		{PhoneNumber: "123", Company: "X"},
	} {
		out, err := s.Add(c)
		require.NoError(t, err)
		assert.Equal(t, types.KindMissingFields, out.Kind)
		assert.ErrorIs(t, out.Err(), types.ErrMissingFields)
	}
	assert.Equal(t, before, Contents(t, s))
}

func testAddDuplicate(t *testing.T, newStore Factory) {
	s := newStore(t, nil)

	_, err := s.Add(types.Contact{Name: "First", Email: "same@example.com"})
	require.NoError(t, err)
	before := Contents(t, s)

	// Missing fields is checked before the duplicate scan.
	out, err := s.Add(types.Contact{Name: "", Email: "same@example.com"})
	require.NoError(t, err)
	assert.Equal(t, types.KindMissingFields, out.Kind)

	out, err = s.Add(types.Contact{Name: "Second", Email: "same@example.com", Company: "Other"})
	require.NoError(t, err)
	assert.Equal(t, types.KindDuplicateEmail, out.Kind)
	assert.Equal(t, "Duplicate was found", out.Message)
	assert.Equal(t, before, Contents(t, s))
}

func testEmailCaseSensitive(t *testing.T, newStore Factory) {
	s := newStore(t, []types.Contact{{Name: "Lower", Email: "case@example.com"}})

	out, err := s.Add(types.Contact{Name: "Upper", Email: "CASE@example.com"})
	require.NoError(t, err)
	assert.Equal(t, types.KindSuccess, out.Kind)

	out, err = s.Remove("Case@example.com")
	require.NoError(t, err)
	assert.Equal(t, types.KindNotFound, out.Kind)
	assert.Len(t, Contents(t, s), 2)
}

func testRemoveNotFound(t *testing.T, newStore Factory) {
	empty := newStore(t, nil)
	out, err := empty.Remove("nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, types.KindNotFound, out.Kind)
	assert.Equal(t, "Contact not found", out.Message)
	assert.Nil(t, Contents(t, empty))

	seeded := newStore(t, types.DefaultSeed())
	out, err = seeded.Remove("nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, types.KindNotFound, out.Kind)
	assert.Equal(t, types.DefaultSeed(), Contents(t, seeded))
}

func testAddRemoveRoundTrip(t *testing.T, newStore Factory) {
	s := newStore(t, types.DefaultSeed())
	c := types.Contact{Name: "Eve Adams", Email: "eve@example.com", Company: "Acme"}

	out, err := s.Add(c)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Len(t, Contents(t, s), 5)

	out, err = s.Remove(c.Email)
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Equal(t, "Eve Adams was removed", out.Message)
	require.NotNil(t, out.Affected)
	assert.Equal(t, c, *out.Affected)
	assert.Equal(t, types.DefaultSeed(), Contents(t, s))
}

func testSearch(t *testing.T, newStore Factory) {
	s := newStore(t, types.DefaultSeed())

	tests := []struct {
		query     string
		wantNames []string
	}{
		{"john", []string{"John Doe", "Alice Johnson"}},
		{"JOHN DOE", []string{"John Doe"}},
		{"abc", []string{"John Doe"}},
		{"example.com", []string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Brown"}},
		{"456 co", []string{"Bob Brown"}},
		{"456", []string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Brown"}},
		{"", []string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Brown"}},
	}
	for _, tt := range tests {
		out, err := s.Search(tt.query)
		require.NoError(t, err)
		require.Equal(t, types.KindSuccess, out.Kind, "query %q", tt.query)
		assert.Equal(t, tt.wantNames, names(out.Contacts), "query %q", tt.query)
	}

	out, err := s.Search("zebra")
	require.NoError(t, err)
	assert.Equal(t, types.KindNoResults, out.Kind)
	assert.Equal(t, "No contacts found", out.Message)
	assert.Empty(t, out.Contacts)

	// Absent optional fields are not rendered into the searched text.
	_, err = s.Add(types.Contact{Name: "Bare", Email: "bare@host"})
	require.NoError(t, err)
	out, err = s.Search("n/a")
	require.NoError(t, err)
	assert.Equal(t, types.KindNoResults, out.Kind)
}

func testClear(t *testing.T, newStore Factory) {
	for _, seed := range [][]types.Contact{nil, types.DefaultSeed()} {
		s := newStore(t, seed)

		out, err := s.Clear()
		require.NoError(t, err)
		assert.Equal(t, types.KindSuccess, out.Kind)
		assert.Equal(t, "The contact list was cleared", out.Message)

		out, err = s.List()
		require.NoError(t, err)
		assert.Equal(t, types.KindEmpty, out.Kind)
		assert.Equal(t, "No contacts found", out.Message)

		// The store is usable after a clear.
		out, err = s.Add(types.Contact{Name: "John Doe", Email: "john@example.com"})
		require.NoError(t, err)
		assert.True(t, out.OK())
	}
}

func testSeedScenario(t *testing.T, newStore Factory) {
	s := newStore(t, types.DefaultSeed())

	out, err := s.Search("abc")
	require.NoError(t, err)
	require.Equal(t, types.KindSuccess, out.Kind)
	require.Len(t, out.Contacts, 1)
	assert.Equal(t, types.DefaultSeed()[0], out.Contacts[0])

	out, err = s.Remove("jane@example.com")
	require.NoError(t, err)
	require.True(t, out.OK())
	assert.Contains(t, out.Message, "Jane Smith")

	assert.Equal(t, []string{"John Doe", "Alice Johnson", "Bob Brown"}, names(Contents(t, s)))
}

func testSeedUntouched(t *testing.T, newStore Factory) {
	seed := types.DefaultSeed()
	s := newStore(t, seed)

	_, err := s.Remove("john@example.com")
	require.NoError(t, err)
	_, err = s.Add(types.Contact{Name: "New", Email: "new@example.com"})
	require.NoError(t, err)
	_, err = s.Clear()
	require.NoError(t, err)

	assert.Equal(t, types.DefaultSeed(), seed)
}

func names(contacts []types.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.Name
	}
	return out
}
