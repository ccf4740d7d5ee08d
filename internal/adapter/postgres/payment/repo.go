// Package payment implements the payment ledger using PostgreSQL.
// Payments are never deleted.
package payment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const table = "payments"

var columns = []string{
	"id", "booking_id", "user_id", "provider", "amount_cents", "currency",
	"provider_intent_id", "provider_charge_id", "status", "error_code",
	"created_at", "updated_at",
}

type row struct {
	ID               uuid.UUID `db:"id"`
	BookingID        uuid.UUID `db:"booking_id"`
	UserID           uuid.UUID `db:"user_id"`
	Provider         string    `db:"provider"`
	AmountCents      int64     `db:"amount_cents"`
	Currency         string    `db:"currency"`
	ProviderIntentID string    `db:"provider_intent_id"`
	ProviderChargeID string    `db:"provider_charge_id"`
	Status           string    `db:"status"`
	ErrorCode        string    `db:"error_code"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Payment {
	return domain.Payment{
		ID:               r.ID,
		BookingID:        r.BookingID,
		UserID:           r.UserID,
		Provider:         r.Provider,
		AmountCents:      r.AmountCents,
		Currency:         r.Currency,
		ProviderIntentID: r.ProviderIntentID,
		ProviderChargeID: r.ProviderChargeID,
		Status:           domain.PaymentStatus(r.Status),
		ErrorCode:        r.ErrorCode,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Repo provides payment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new payment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new payment row.
func (r *Repo) Create(ctx context.Context, p domain.Payment) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.BookingID, p.UserID, p.Provider, p.AmountCents, p.Currency,
			p.ProviderIntentID, p.ProviderChargeID, string(p.Status), p.ErrorCode,
			p.CreatedAt, p.UpdatedAt)

	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return postgres.MapError(err, "payment", p.ID)
	}
	return nil
}

// UpdateState persists the provider-derived fields of p (references, status,
// error code, updated_at).
func (r *Repo) UpdateState(ctx context.Context, p domain.Payment) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"provider_intent_id": p.ProviderIntentID,
			"provider_charge_id": p.ProviderChargeID,
			"status":             string(p.Status),
			"error_code":         p.ErrorCode,
			"updated_at":         p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}))
	if err != nil {
		return postgres.MapError(err, "payment", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// GetForUser returns a payment owned by userID; other users' payments are
// reported as domain.ErrNotFound.
func (r *Repo) GetForUser(ctx context.Context, id, userID uuid.UUID) (domain.Payment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	err := postgres.Get(ctx, q, &rw, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Payment{}, postgres.MapError(err, "payment", id)
	}
	return rw.toDomain(), nil
}

// SumSucceeded re-derives the total of succeeded payments for a booking
// from the ledger.
func (r *Repo) SumSucceeded(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int64
	err := postgres.Get(ctx, q, &total, postgres.Builder.
		Select("COALESCE(SUM(amount_cents), 0)::bigint").
		From(table).
		Where(sq.Eq{"booking_id": bookingID, "status": string(domain.PaymentStatusSucceeded)}))
	if err != nil {
		return 0, fmt.Errorf("sum succeeded payments for booking %s: %w", bookingID, err)
	}
	return total, nil
}

// ListByBooking returns all payments of a booking, oldest first.
func (r *Repo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, fmt.Errorf("list payments for booking %s: %w", bookingID, err)
	}

	out := make([]domain.Payment, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
