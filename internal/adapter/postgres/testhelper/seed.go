package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Email:     "user-" + suffix + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Email, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedBooking creates a booking owned by userID with the given status and
// quote (nil for an unquoted booking).
func SeedBooking(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.BookingStatus, quotedCents *int64) domain.Booking {
	t.Helper()

	b := domain.Booking{
		ID:               uuid.New(),
		UserID:           userID,
		Type:             domain.BookingTypeGeneral,
		Status:           status,
		QuotedPriceCents: quotedCents,
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO bookings (id, user_id, type, status, quoted_price_cents, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		b.ID, b.UserID, string(b.Type), string(b.Status), b.QuotedPriceCents, b.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking: %v", err)
	}

	return b
}

// SeedContact inserts a contact row directly, bypassing the repository.
// The pair is stored in canonical order.
func SeedContact(t *testing.T, pool *pgxpool.Pool, a, b uuid.UUID, occurredAt time.Time) domain.ContactEvent {
	t.Helper()

	c, err := domain.NewContactEvent(a, b, occurredAt.UTC().Truncate(time.Microsecond), nil)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO contacts (id, user_a_id, user_b_id, occurred_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.UserA, c.UserB, c.OccurredAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact insert: %v", err)
	}

	return c
}

// SeedAlert inserts an exposure alert with explicit timestamps.
func SeedAlert(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, createdAt, expiresAt time.Time, acknowledgedAt *time.Time) domain.ExposureAlert {
	t.Helper()

	a := domain.ExposureAlert{
		ID:             uuid.New(),
		UserID:         userID,
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
		ExpiresAt:      expiresAt.UTC().Truncate(time.Microsecond),
		AcknowledgedAt: acknowledgedAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO exposure_alerts (id, user_id, created_at, expires_at, acknowledged_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.UserID, a.CreatedAt, a.ExpiresAt, a.AcknowledgedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAlert: %v", err)
	}

	return a
}

// CountRows returns the number of rows in table matching where (may be empty).
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 { return &v }
