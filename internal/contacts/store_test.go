package contacts

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/internal/storetest"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func newTestStore(t *testing.T, seed []types.Contact) types.ContactStore {
	t.Helper()
	s, err := New(seed)
	require.NoError(t, err)
	return s
}

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, newTestStore)
}

func TestLockedConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T, seed []types.Contact) types.ContactStore {
		return NewLocked(newTestStore(t, seed))
	})
}

func TestNewRejectsInvalidSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    []types.Contact
		opts    []Option
		wantErr error
	}{
		{
			name:    "missing email",
			seed:    []types.Contact{{Name: "A"}},
			wantErr: types.ErrMissingFields,
		},
		{
			name: "duplicate email",
			seed: []types.Contact{
				{Name: "A", Email: "x@y.z"},
				{Name: "B", Email: "x@y.z"},
			},
			wantErr: types.ErrDuplicateEmail,
		},
		{
			name:    "whitespace name under strict fields",
			seed:    []types.Contact{{Name: "   ", Email: "x@y.z"}},
			opts:    []Option{WithStrictFields()},
			wantErr: types.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.seed, tt.opts...)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, types.ErrInvalidSeed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCopiesSeed(t *testing.T) {
	seed := types.DefaultSeed()
	s, err := New(seed)
	require.NoError(t, err)

	seed[0].Name = "Mutated"
	assert.Equal(t, "John Doe", s.Snapshot()[0].Name)

	snap := s.Snapshot()
	snap[1].Name = "Mutated"
	assert.Equal(t, "Jane Smith", s.Snapshot()[1].Name)
}

func TestListReturnsCopy(t *testing.T) {
	s, err := New(types.DefaultSeed())
	require.NoError(t, err)

	out, err := s.List()
	require.NoError(t, err)
	out.Contacts[0].Email = "hijacked@example.com"

	assert.Equal(t, "john@example.com", s.Snapshot()[0].Email)
}

func TestWhitespaceFields(t *testing.T) {
	lenient, err := New(nil)
	require.NoError(t, err)
	out, err := lenient.Add(types.Contact{Name: "  ", Email: "space@example.com"})
	require.NoError(t, err)
	assert.Equal(t, types.KindSuccess, out.Kind)
	assert.Equal(t, "  ", lenient.Snapshot()[0].Name)

	strict, err := New(nil, WithStrictFields())
	require.NoError(t, err)
	out, err = strict.Add(types.Contact{Name: "  ", Email: "space@example.com"})
	require.NoError(t, err)
	assert.Equal(t, types.KindMissingFields, out.Kind)
	assert.Zero(t, strict.Len())

	// Strict mode never trims what it stores.
	out, err = strict.Add(types.Contact{Name: " Pad ", Email: "pad@example.com"})
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Equal(t, " Pad ", strict.Snapshot()[0].Name)
}

func TestLockedConcurrentAdds(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	locked := NewLocked(s)

	const workers = 16
	const emails = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < emails; i++ {
				out, err := locked.Add(types.Contact{
					Name:  fmt.Sprintf("worker %d", w),
					Email: fmt.Sprintf("user%d@example.com", i),
				})
				if err != nil || !out.OK() {
					continue
				}
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, emails, successes)
	assert.Equal(t, emails, s.Len())
}
