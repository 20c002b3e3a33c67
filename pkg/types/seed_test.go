package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.Len(t, seed, 4)
	require.NoError(t, ValidateSeed(seed, true))

	// Modifying one copy must not leak into the next.
	seed[0].Name = "changed"
	assert.Equal(t, "John Doe", DefaultSeed()[0].Name)
}

func TestValidateSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    []Contact
		strict  bool
		wantErr error
	}{
		{"empty seed is valid", nil, false, nil},
		{"missing name", []Contact{{Email: "a@b.com"}}, false, ErrMissingFields},
		{
			"duplicate email",
			[]Contact{{Name: "A", Email: "a@b.com"}, {Name: "B", Email: "a@b.com"}},
			false,
			ErrDuplicateEmail,
		},
		{
			"emails differing in case are distinct",
			[]Contact{{Name: "A", Email: "a@b.com"}, {Name: "B", Email: "A@B.com"}},
			false,
			nil,
		},
		{"whitespace name rejected when strict", []Contact{{Name: " ", Email: "a@b.com"}}, true, ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeed(tt.seed, tt.strict)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSeed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
