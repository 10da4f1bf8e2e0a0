package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

type EngagementRepo struct {
	db *sql.DB
}

func NewEngagementRepo(db *sql.DB) *EngagementRepo {
	return &EngagementRepo{db: db}
}

// Add inserts the (user, event, kind) membership row. The primary key makes
// the insert idempotent: a second add of the same pair affects zero rows,
// and concurrent adds resolve to exactly one wasAdded=true.
func (r *EngagementRepo) Add(ctx context.Context, kind domain.EngagementKind, userID string, eventID int64) (bool, error) {
	const q = `INSERT OR IGNORE INTO engagements (user_id, event_id, kind) VALUES (?,?,?);`
	res, err := r.db.ExecContext(ctx, q, userID, eventID, string(kind))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "foreign key") {
			return false, domain.ErrEventNotFound()
		}
		return false, domain.ErrDBUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return n > 0, nil
}

// Remove deletes the membership row if present.
func (r *EngagementRepo) Remove(ctx context.Context, kind domain.EngagementKind, userID string, eventID int64) (bool, error) {
	const q = `DELETE FROM engagements WHERE user_id = ? AND event_id = ? AND kind = ?;`
	res, err := r.db.ExecContext(ctx, q, userID, eventID, string(kind))
	if err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return n > 0, nil
}

// MembersOf returns the members of one relation in join order.
func (r *EngagementRepo) MembersOf(ctx context.Context, kind domain.EngagementKind, eventID int64) ([]string, error) {
	const q = `SELECT user_id FROM engagements WHERE event_id = ? AND kind = ? ORDER BY created_at, user_id;`
	rows, err := r.db.QueryContext(ctx, q, eventID, string(kind))
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return members, nil
}
