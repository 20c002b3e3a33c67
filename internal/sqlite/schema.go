// Package sqlite implements a ContactStore that uses an in-memory SQLite
// database as its query engine.
package sqlite

// Schema DDL. seq keeps insertion order; email carries the uniqueness
// invariant with SQLite's default BINARY collation, so the comparison is
// case-sensitive.
const (
	createContacts = `CREATE TABLE contacts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    contact_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    phone_number TEXT,
    company TEXT,
    created_at TEXT NOT NULL
);`

	idxContactsName = `CREATE INDEX idx_contacts_name ON contacts(name);`
)

// schemaDDL lists the statements run on Attach, in order.
var schemaDDL = []string{
	createContacts,
	idxContactsName,
}
