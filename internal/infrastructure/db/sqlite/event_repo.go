package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/application/event"
	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// ---------- helpers ----------

const eventCols = `id, creator_id, name, description, location, type, access, start_at, end_at, rsvp_required, is_priced, cost, created_at`

type eventRow struct {
	ID           int64
	CreatorID    string
	Name         string
	Description  string
	Location     string
	Type         string
	Access       string
	StartAt      string
	EndAt        string
	RSVPRequired bool
	IsPriced     bool
	Cost         sql.NullFloat64
	CreatedAt    time.Time
}

func (er *eventRow) fields() []any {
	return []any{
		&er.ID, &er.CreatorID, &er.Name, &er.Description, &er.Location,
		&er.Type, &er.Access, &er.StartAt, &er.EndAt,
		&er.RSVPRequired, &er.IsPriced, &er.Cost, &er.CreatedAt,
	}
}

func toDomainEvent(er eventRow) (domain.Event, error) {
	start, err := time.Parse(domain.TimeLayout, er.StartAt)
	if err != nil {
		return domain.Event{}, domain.ErrInternal(err)
	}
	end, err := time.Parse(domain.TimeLayout, er.EndAt)
	if err != nil {
		return domain.Event{}, domain.ErrInternal(err)
	}

	e := domain.Event{
		ID:           er.ID,
		CreatorID:    er.CreatorID,
		Name:         er.Name,
		Description:  er.Description,
		Location:     er.Location,
		Type:         er.Type,
		Access:       er.Access,
		StartAt:      start,
		EndAt:        end,
		RSVPRequired: er.RSVPRequired,
		IsPriced:     er.IsPriced,
		CreatedAt:    er.CreatedAt,
	}
	if er.Cost.Valid {
		cost := er.Cost.Float64
		e.Cost = &cost
	}
	return e, nil
}

func (r *EventRepo) categoriesOf(ctx context.Context, eventID int64) ([]string, error) {
	const q = `SELECT category FROM event_categories WHERE event_id = ? ORDER BY category;`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return cats, nil
}

func (r *EventRepo) collectEvents(ctx context.Context, rows *sql.Rows) ([]domain.Event, error) {
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var er eventRow
		if err := rows.Scan(er.fields()...); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		e, err := toDomainEvent(er)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	for i := range out {
		cats, err := r.categoriesOf(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Categories = cats
	}
	return out, nil
}

// ---------- event.EventRepo ----------

func (r *EventRepo) Create(ctx context.Context, e domain.Event) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	defer tx.Rollback()

	var cost sql.NullFloat64
	if e.Cost != nil {
		cost = sql.NullFloat64{Float64: *e.Cost, Valid: true}
	}

	const q = `
INSERT INTO events (creator_id, name, description, location, type, access, start_at, end_at, rsvp_required, is_priced, cost)
VALUES (?,?,?,?,?,?,?,?,?,?,?);
`
	res, err := tx.ExecContext(ctx, q,
		e.CreatorID, e.Name, e.Description, e.Location, e.Type, e.Access,
		e.StartAt.Format(domain.TimeLayout), e.EndAt.Format(domain.TimeLayout),
		e.RSVPRequired, e.IsPriced, cost,
	)
	if err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}

	const qc = `INSERT OR IGNORE INTO event_categories (event_id, category) VALUES (?,?);`
	for _, c := range e.Categories {
		if _, err := tx.ExecContext(ctx, qc, id, c); err != nil {
			return 0, domain.ErrDBUnavailable(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	return id, nil
}

func (r *EventRepo) GetByID(ctx context.Context, id int64, includeInactive bool) (domain.Event, error) {
	q := `SELECT ` + eventCols + ` FROM events WHERE id = ?`
	if !includeInactive {
		q += ` AND access != 'Inactive'`
	}
	q += ` LIMIT 1;`

	var er eventRow
	err := r.db.QueryRowContext(ctx, q, id).Scan(er.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound()
		}
		return domain.Event{}, domain.ErrDBUnavailable(err)
	}
	e, err := toDomainEvent(er)
	if err != nil {
		return domain.Event{}, err
	}
	e.Categories, err = r.categoriesOf(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (r *EventRepo) List(ctx context.Context, includeInactive bool) ([]domain.Event, error) {
	q := `SELECT ` + eventCols + ` FROM events`
	if !includeInactive {
		q += ` WHERE access != 'Inactive'`
	}
	q += ` ORDER BY start_at, id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return r.collectEvents(ctx, rows)
}

func (r *EventRepo) Update(ctx context.Context, id int64, upd event.Update) error {
	if upd.Empty() {
		return nil
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Location != nil {
		set("location", *upd.Location)
	}
	if upd.Type != nil {
		set("type", *upd.Type)
	}
	if upd.Access != nil {
		set("access", *upd.Access)
	}
	if upd.StartAt != nil {
		set("start_at", upd.StartAt.Format(domain.TimeLayout))
	}
	if upd.EndAt != nil {
		set("end_at", upd.EndAt.Format(domain.TimeLayout))
	}
	if upd.RSVPRequired != nil {
		set("rsvp_required", *upd.RSVPRequired)
	}
	if upd.IsPriced != nil {
		set("is_priced", *upd.IsPriced)
		if !*upd.IsPriced {
			set("cost", nil)
		}
	}
	if upd.Cost != nil {
		set("cost", *upd.Cost)
	}

	q := `UPDATE events SET ` + strings.Join(sets, ", ") + ` WHERE id = ?;`
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrEventNotFound()
	}
	return nil
}

func (r *EventRepo) SetAccess(ctx context.Context, id int64, access string) error {
	const q = `UPDATE events SET access = ? WHERE id = ?;`
	res, err := r.db.ExecContext(ctx, q, access, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrEventNotFound()
	}
	return nil
}

// Delete removes the event row; categories and engagements cascade.
func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM events WHERE id = ?;`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *EventRepo) Search(ctx context.Context, f event.SearchFilter) ([]domain.Event, error) {
	q := `SELECT ` + eventCols + ` FROM events WHERE access != 'Inactive'`
	var args []any

	if f.TitleContains != "" {
		q += ` AND name LIKE ?`
		args = append(args, "%"+f.TitleContains+"%")
	}
	if f.DescriptionContains != "" {
		q += ` AND description LIKE ?`
		args = append(args, "%"+f.DescriptionContains+"%")
	}
	if f.Category != "" {
		q += ` AND (type = ? OR EXISTS (SELECT 1 FROM event_categories ec WHERE ec.event_id = events.id AND ec.category = ?))`
		args = append(args, f.Category, f.Category)
	}
	if f.StartFrom != nil {
		q += ` AND start_at >= ?`
		args = append(args, f.StartFrom.Format(domain.TimeLayout))
	}
	if f.StartUntil != nil {
		q += ` AND start_at <= ?`
		args = append(args, f.StartUntil.Format(domain.TimeLayout))
	}
	q += ` ORDER BY start_at, id;`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return r.collectEvents(ctx, rows)
}
