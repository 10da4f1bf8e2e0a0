package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// openTestDB opens an in-memory database. Connections are capped at one so
// every caller shares the single in-memory store and writes serialize.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()

	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error with code %q, got %v", code, err)
	}
	if de.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, de.Code, err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestWithSessionPragmas(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dsn  string
		want string
	}{
		{"app.db", "file:app.db?" + sessionPragmas},
		{"file:app.db", "file:app.db?" + sessionPragmas},
		{"file:app.db?mode=rwc", "file:app.db?mode=rwc&" + sessionPragmas},
	}
	for _, c := range cases {
		if got := withSessionPragmas(c.dsn); got != c.want {
			t.Fatalf("withSessionPragmas(%q) = %q, want %q", c.dsn, got, c.want)
		}
	}
}

// The pragmas are per-session state, so they must hold on every connection
// the pool opens, not just the first.
func TestOpen_PragmasHoldOnEveryConnection(t *testing.T) {
	t.Parallel()

	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(8)

	ctx := context.Background()
	conns := make([]*sql.Conn, 0, 8)
	t.Cleanup(func() {
		for _, c := range conns {
			c.Close()
		}
	})

	// Holding all eight at once forces eight distinct pool connections.
	for i := 0; i < 8; i++ {
		conn, err := db.Conn(ctx)
		if err != nil {
			t.Fatalf("conn %d: %v", i, err)
		}
		conns = append(conns, conn)
	}

	for i, conn := range conns {
		var fk int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk); err != nil {
			t.Fatalf("conn %d pragma: %v", i, err)
		}
		if fk != 1 {
			t.Fatalf("conn %d: foreign_keys=%d, want 1", i, fk)
		}
	}
}

// Foreign keys must be enforced no matter which pool connection serves the
// statement: an engagement for a missing event is rejected on every one.
func TestOpen_ForeignKeysEnforcedAcrossPool(t *testing.T) {
	t.Parallel()

	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(4)

	ctx := context.Background()
	repo := NewEngagementRepo(db)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := repo.Add(ctx, domain.KindLike, "uX", 999)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		requireDomainCode(t, <-done, "event_not_found")
	}

	members, err := repo.MembersOf(ctx, domain.KindLike, 999)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("orphan engagement slipped through: %v", members)
	}
}
