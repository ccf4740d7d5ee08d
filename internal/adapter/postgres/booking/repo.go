// Package booking reads and transitions bookings. Booking CRUD belongs to
// another service; this repository only exposes what the payment workflow
// and check-in need.
package booking

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const table = "bookings"

// ownerUsername is a scalar subquery so that FOR UPDATE locks only the
// booking row, not the owner.
const ownerUsername = "(SELECT u.username FROM users u WHERE u.id = bookings.user_id) AS owner_username"

var columns = []string{"id", "user_id", ownerUsername, "type", "status", "quoted_price_cents", "created_at"}

type row struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	OwnerUsername    string    `db:"owner_username"`
	Type             string    `db:"type"`
	Status           string    `db:"status"`
	QuotedPriceCents *int64    `db:"quoted_price_cents"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Booking {
	return domain.Booking{
		ID:               r.ID,
		UserID:           r.UserID,
		OwnerUsername:    r.OwnerUsername,
		Type:             domain.BookingType(r.Type),
		Status:           domain.BookingStatus(r.Status),
		QuotedPriceCents: r.QuotedPriceCents,
		CreatedAt:        r.CreatedAt,
	}
}

// Repo provides booking access backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new booking repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a booking regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return r.get(ctx, id, postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}))
}

// GetForUser returns a booking owned by userID. A booking owned by someone
// else is reported as domain.ErrNotFound.
func (r *Repo) GetForUser(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	return r.get(ctx, id, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}))
}

// LockForUser is GetForUser with a row lock (SELECT ... FOR UPDATE). It must
// run inside a transaction; concurrent finalizations of the same booking
// serialize on this lock.
func (r *Repo) LockForUser(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error) {
	return r.get(ctx, id, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("FOR UPDATE"))
}

// Lock locks a booking row regardless of owner.
func (r *Repo) Lock(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	return r.get(ctx, id, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, query sq.SelectBuilder) (domain.Booking, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	if err := postgres.Get(ctx, q, &rw, query); err != nil {
		return domain.Booking{}, postgres.MapError(err, "booking", id)
	}
	return rw.toDomain(), nil
}

// TransitionStatus moves the booking from exactly `from` to `to`. It returns
// false when the booking was not in `from` (nothing changed).
func (r *Repo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, now time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		Set("status", string(to)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id, "status": string(from)}))
	if err != nil {
		return false, fmt.Errorf("transition booking %s %s->%s: %w", id, from, to, err)
	}
	return tag.RowsAffected() == 1, nil
}
