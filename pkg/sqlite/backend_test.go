package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestNewBackendLifecycle(t *testing.T) {
	b := sqlite.NewBackend()

	_, err := b.List()
	assert.ErrorIs(t, err, types.ErrStoreDetached, "operations before Attach")

	cfg := types.Config{Backend: types.BackendSQLite}
	require.NoError(t, b.Attach(cfg, types.DefaultSeed()))
	assert.ErrorIs(t, b.Attach(cfg, nil), types.ErrAlreadyAttached)

	out, err := b.Search("bob")
	require.NoError(t, err)
	require.Len(t, out.Contacts, 1)
	assert.Equal(t, "Bob Brown", out.Contacts[0].Name)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "Detach is idempotent")
	_, err = b.Add(types.Contact{Name: "A", Email: "a@example.com"})
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}
