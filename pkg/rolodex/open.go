package rolodex

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/rolodex/internal/contacts"
	"github.com/mesh-intelligence/rolodex/pkg/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

type options struct {
	logger *slog.Logger
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger handed to the backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Open returns a ContactStore for cfg.Backend holding a copy of seed. The
// memory backend is returned behind a mutex so the result is safe to share
// between goroutines. The caller must Close the store.
//
// Example:
//
//	store, err := rolodex.Open(types.Config{Backend: types.BackendMemory}, types.DefaultSeed())
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func Open(cfg types.Config, seed []types.Contact, opts ...Option) (types.ContactStore, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("open %q: %w", cfg.Backend, err)
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		b := sqlite.NewBackend(sqlite.WithLogger(o.logger))
		if err := b.Attach(cfg, seed); err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return b, nil
	default:
		var storeOpts []contacts.Option
		if cfg.StrictFields {
			storeOpts = append(storeOpts, contacts.WithStrictFields())
		}
		s, err := contacts.New(seed, storeOpts...)
		if err != nil {
			return nil, fmt.Errorf("open memory: %w", err)
		}
		o.logger.Debug("memory store opened", "contacts", len(seed))
		return contacts.NewLocked(s), nil
	}
}
