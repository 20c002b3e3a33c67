package contacts

import (
	"sync"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var _ types.ContactStore = (*Locked)(nil)

// Locked serializes access to a ContactStore. The mutex is held for the
// whole of each operation, so the find-then-mutate steps of Add and Remove
// cannot interleave.
type Locked struct {
	mu    sync.Mutex
	inner types.ContactStore
}

// NewLocked wraps inner.
func NewLocked(inner types.ContactStore) *Locked {
	return &Locked{inner: inner}
}

func (l *Locked) Add(c types.Contact) (types.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Add(c)
}

func (l *Locked) Remove(email string) (types.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Remove(email)
}

func (l *Locked) List() (types.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.List()
}

func (l *Locked) Search(query string) (types.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Search(query)
}

func (l *Locked) Clear() (types.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Clear()
}

func (l *Locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Close()
}
