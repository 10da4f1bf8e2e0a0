// Package sqlite is the embedded storage layer. One database file carries
// accounts, events and the engagement relations; counts are never stored,
// they are derived from the membership rows at read time.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// sessionPragmas ride in the DSN so the driver applies them to every
// connection the pool opens. foreign_keys and busy_timeout are per-session
// state; running them through db.Exec would configure only the one
// connection that happened to execute it.
const sessionPragmas = "_pragma=journal_mode(WAL)" +
	"&_pragma=synchronous(NORMAL)" +
	"&_pragma=foreign_keys(1)" +
	"&_pragma=busy_timeout(5000)"

// Open connects to the SQLite database at dsn and applies the schema.
// dsn examples: "file:app.db?cache=shared&mode=rwc" or "app.db".
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", withSessionPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func withSessionPragmas(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + sessionPragmas
}

// Migrate creates the tables if they do not exist.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// verification_expiry is unix seconds so expiry comparisons stay exact;
// event start/end use the 'YYYY-MM-DD HH:MM:SS' text form the rest of the
// system speaks.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    account_id TEXT NOT NULL UNIQUE,
    account_type TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_verified INTEGER NOT NULL DEFAULT 0,
    verification_code TEXT,
    verification_expiry INTEGER,
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    creator_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    location TEXT NOT NULL,
    type TEXT NOT NULL,
    access TEXT NOT NULL DEFAULT 'Public',
    start_at TEXT NOT NULL,
    end_at TEXT NOT NULL,
    rsvp_required INTEGER NOT NULL DEFAULT 0,
    is_priced INTEGER NOT NULL DEFAULT 0,
    cost REAL,
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_events_start_at ON events(start_at);

CREATE TABLE IF NOT EXISTS event_categories (
    event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    PRIMARY KEY (event_id, category)
);

CREATE TABLE IF NOT EXISTS engagements (
    user_id TEXT NOT NULL,
    event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    kind TEXT NOT NULL CHECK (kind IN ('like','rsvp')),
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    PRIMARY KEY (user_id, event_id, kind)
);
`
