// Package sqlite provides the public API for the SQLite contact store.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Backend is a ContactStore whose database exists between Attach and Detach.
type Backend interface {
	types.ContactStore

	// Attach opens a private in-memory database and loads seed into it.
	Attach(config types.Config, seed []types.Contact) error

	// Detach drops the database. Operations after Detach return
	// types.ErrStoreDetached.
	Detach() error
}

// Option configures a Backend.
type Option = sqlite.Option

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return sqlite.WithLogger(logger)
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{Backend: types.BackendSQLite}, types.DefaultSeed())
//	if err != nil {
//	    return err
//	}
//	defer backend.Detach()
func NewBackend(opts ...Option) Backend {
	return sqlite.NewBackend(opts...)
}
