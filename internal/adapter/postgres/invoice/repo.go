// Package invoice implements invoice persistence using PostgreSQL.
// Invoices are immutable: there is no update or delete.
package invoice

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const table = "invoices"

var columns = []string{
	"id", "booking_id", "user_id", "number", "issued_at", "currency",
	"subtotal_cents", "tax_cents", "total_cents", "meta",
}

type row struct {
	ID            uuid.UUID      `db:"id"`
	BookingID     uuid.UUID      `db:"booking_id"`
	UserID        uuid.UUID      `db:"user_id"`
	Number        string         `db:"number"`
	IssuedAt      time.Time      `db:"issued_at"`
	Currency      string         `db:"currency"`
	SubtotalCents int64          `db:"subtotal_cents"`
	TaxCents      int64          `db:"tax_cents"`
	TotalCents    int64          `db:"total_cents"`
	Meta          map[string]any `db:"meta"`
}

func (r row) toDomain() domain.Invoice {
	return domain.Invoice{
		ID:            r.ID,
		BookingID:     r.BookingID,
		UserID:        r.UserID,
		Number:        r.Number,
		IssuedAt:      r.IssuedAt,
		Currency:      r.Currency,
		SubtotalCents: r.SubtotalCents,
		TaxCents:      r.TaxCents,
		TotalCents:    r.TotalCents,
		Meta:          r.Meta,
	}
}

// Repo provides invoice persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new invoice repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateIfAbsent inserts inv unless the booking already has an invoice (or
// the number is taken). It reports whether a row was written.
func (r *Repo) CreateIfAbsent(ctx context.Context, inv domain.Invoice) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	meta := inv.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(inv.ID, inv.BookingID, inv.UserID, inv.Number, inv.IssuedAt, inv.Currency,
			inv.SubtotalCents, inv.TaxCents, inv.TotalCents, meta).
		Suffix("ON CONFLICT DO NOTHING"))
	if err != nil {
		return false, postgres.MapError(err, "invoice", inv.Number)
	}
	return tag.RowsAffected() == 1, nil
}

// ExistsForBooking reports whether an invoice was already issued for the booking.
func (r *Repo) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sub := postgres.Builder.Select("1").From(table).Where(sq.Eq{"booking_id": bookingID})

	var exists bool
	if err := postgres.Get(ctx, q, &exists, postgres.Builder.Select().Column(sq.Expr("EXISTS(?)", sub))); err != nil {
		return false, fmt.Errorf("check invoice for booking %s: %w", bookingID, err)
	}
	return exists, nil
}

// GetByNumberForUser returns the invoice with number owned by userID.
// Other users' invoices are reported as domain.ErrNotFound.
func (r *Repo) GetByNumberForUser(ctx context.Context, number string, userID uuid.UUID) (domain.Invoice, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	err := postgres.Get(ctx, q, &rw, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"number": number, "user_id": userID}))
	if err != nil {
		return domain.Invoice{}, postgres.MapError(err, "invoice", number)
	}
	return rw.toDomain(), nil
}
