package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// memoryDSN opens a private in-memory database. Each connection to it would
// see a different database, so the pool is pinned to one connection.
const memoryDSN = "file::memory:"

// Compile-time interface check.
var _ types.ContactStore = (*Backend)(nil)

// Backend implements ContactStore on SQLite. The database lives only as long
// as the backend is attached.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *slog.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Backend) { b.logger = logger }
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach opens the database, creates the schema, and loads seed in one
// transaction. Returns ErrAlreadyAttached if already attached and an error
// wrapping ErrInvalidSeed if seed breaks the store invariants.
func (b *Backend) Attach(config types.Config, seed []types.Contact) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := types.ValidateSeed(seed, config.StrictFields); err != nil {
		return fmt.Errorf("attach: %w", err)
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := loadSeed(db, seed); err != nil {
		db.Close()
		return fmt.Errorf("loading seed: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	b.logger.Debug("sqlite store attached", "contacts", len(seed))
	return nil
}

// Detach closes the database. Idempotent. After Detach every operation
// returns ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.logger.Debug("sqlite store detached")
	return nil
}

// Close is Detach, for the ContactStore interface.
func (b *Backend) Close() error {
	return b.Detach()
}

// Add inserts c unless a required field is missing or the email is taken.
// The lookup and the insert share one transaction.
func (b *Backend) Add(c types.Contact) (types.Outcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Outcome{}, types.ErrStoreDetached
	}
	if !c.HasRequired(b.config.StrictFields) {
		return types.MissingFields(), nil
	}

	tx, err := b.db.Begin()
	if err != nil {
		return types.Outcome{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, found, err := findByEmail(tx, c.Email)
	if err != nil {
		return types.Outcome{}, err
	}
	if found {
		return types.DuplicateEmail(), nil
	}
	if err := insertContact(tx, c, time.Now().UTC()); err != nil {
		return types.Outcome{}, err
	}
	if err := tx.Commit(); err != nil {
		return types.Outcome{}, fmt.Errorf("committing contact: %w", err)
	}
	return types.Added(c), nil
}

// Remove deletes the contact with the given email.
func (b *Backend) Remove(email string) (types.Outcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Outcome{}, types.ErrStoreDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return types.Outcome{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	c, found, err := findByEmail(tx, email)
	if err != nil {
		return types.Outcome{}, err
	}
	if !found {
		return types.NotFound(), nil
	}
	if _, err := tx.Exec("DELETE FROM contacts WHERE email = ?", email); err != nil {
		return types.Outcome{}, fmt.Errorf("deleting contact: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Outcome{}, fmt.Errorf("committing deletion: %w", err)
	}
	return types.Removed(c), nil
}

// List returns every contact ordered by insertion.
func (b *Backend) List() (types.Outcome, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Outcome{}, types.ErrStoreDetached
	}
	all, err := queryContacts(b.db)
	if err != nil {
		return types.Outcome{}, err
	}
	if len(all) == 0 {
		return types.Empty(), nil
	}
	return types.Listed(all), nil
}

// Search filters the ordered contacts with Contact.Matches. SQLite's lower()
// only folds ASCII, so matching is done in Go to agree with the memory store.
func (b *Backend) Search(query string) (types.Outcome, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Outcome{}, types.ErrStoreDetached
	}
	all, err := queryContacts(b.db)
	if err != nil {
		return types.Outcome{}, err
	}
	var results []types.Contact
	for _, c := range all {
		if c.Matches(query) {
			results = append(results, c)
		}
	}
	if len(results) == 0 {
		return types.NoResults(), nil
	}
	return types.Listed(results), nil
}

// Clear deletes every row.
func (b *Backend) Clear() (types.Outcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Outcome{}, types.ErrStoreDetached
	}
	if _, err := b.db.Exec("DELETE FROM contacts"); err != nil {
		return types.Outcome{}, fmt.Errorf("clearing contacts: %w", err)
	}
	return types.Cleared(), nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func loadSeed(db *sql.DB, seed []types.Contact) error {
	if len(seed) == 0 {
		return nil
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, c := range seed {
		if err := insertContact(tx, c, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertContact(tx *sql.Tx, c types.Contact, now time.Time) error {
	_, err := tx.Exec(
		"INSERT INTO contacts (contact_id, name, email, phone_number, company, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		generateUUID(), c.Name, c.Email, nullable(c.PhoneNumber), nullable(c.Company), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting contact %q: %w", c.Email, err)
	}
	return nil
}

func findByEmail(q querier, email string) (types.Contact, bool, error) {
	row := q.QueryRow(
		"SELECT name, email, phone_number, company FROM contacts WHERE email = ?",
		email,
	)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Contact{}, false, nil
		}
		return types.Contact{}, false, fmt.Errorf("looking up %q: %w", email, err)
	}
	return c, true, nil
}

func queryContacts(q querier) ([]types.Contact, error) {
	rows, err := q.Query("SELECT name, email, phone_number, company FROM contacts ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var out []types.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return out, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (types.Contact, error) {
	var (
		c              types.Contact
		phone, company sql.NullString
	)
	if err := s.Scan(&c.Name, &c.Email, &phone, &company); err != nil {
		return types.Contact{}, err
	}
	c.PhoneNumber = phone.String
	c.Company = company.String
	return c, nil
}

// nullable stores absent optional fields as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
