// Package contact implements the Contact Store using PostgreSQL.
// Rows are append-only; the only deletion path is the retention sweep.
package contact

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const table = "contacts"

var columns = []string{"id", "user_a_id", "user_b_id", "occurred_at", "booking_id"}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserA      uuid.UUID  `db:"user_a_id"`
	UserB      uuid.UUID  `db:"user_b_id"`
	OccurredAt time.Time  `db:"occurred_at"`
	BookingID  *uuid.UUID `db:"booking_id"`
}

func (r row) toDomain() domain.ContactEvent {
	return domain.ContactEvent{
		ID:         r.ID,
		UserA:      r.UserA,
		UserB:      r.UserB,
		OccurredAt: r.OccurredAt,
		BookingID:  r.BookingID,
	}
}

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a contact. The event must already be in canonical order
// (see domain.NewContactEvent); the table's check constraint rejects anything else.
func (r *Repo) Create(ctx context.Context, c domain.ContactEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.UserA, c.UserB, c.OccurredAt, c.BookingID)

	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return postgres.MapError(err, "contact", c.ID)
	}
	return nil
}

// ListInvolving returns every contact with occurred_at >= since in which user
// is either participant, oldest first.
func (r *Repo) ListInvolving(ctx context.Context, user uuid.UUID, since time.Time) ([]domain.ContactEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Or{sq.Eq{"user_a_id": user}, sq.Eq{"user_b_id": user}}).
		Where(sq.GtOrEq{"occurred_at": since}).
		OrderBy("occurred_at ASC", "id ASC")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list contacts involving %s: %w", user, err)
	}

	out := make([]domain.ContactEvent, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// DeleteOccurredBefore removes contacts with occurred_at < cutoff and returns
// the number of deleted rows.
func (r *Repo) DeleteOccurredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Delete(table).
		Where(sq.Lt{"occurred_at": cutoff}))
	if err != nil {
		return 0, fmt.Errorf("delete contacts before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}
