// Package alert implements exposure alert persistence using PostgreSQL.
// Active means acknowledged_at IS NULL AND expires_at > now; there is no
// stored state column.
package alert

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const table = "exposure_alerts"

var columns = []string{"id", "user_id", "created_at", "expires_at", "acknowledged_at", "source_reported_at"}

type row struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	CreatedAt        time.Time  `db:"created_at"`
	ExpiresAt        time.Time  `db:"expires_at"`
	AcknowledgedAt   *time.Time `db:"acknowledged_at"`
	SourceReportedAt *time.Time `db:"source_reported_at"`
}

func (r row) toDomain() domain.ExposureAlert {
	return domain.ExposureAlert{
		ID:               r.ID,
		UserID:           r.UserID,
		CreatedAt:        r.CreatedAt,
		ExpiresAt:        r.ExpiresAt,
		AcknowledgedAt:   r.AcknowledgedAt,
		SourceReportedAt: r.SourceReportedAt,
	}
}

// Repo provides exposure alert persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new alert repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// activeFor is the single definition of an active alert used by every query.
func activeFor(user uuid.UUID, now time.Time) sq.And {
	return sq.And{
		sq.Eq{"user_id": user},
		sq.Eq{"acknowledged_at": nil},
		sq.Gt{"expires_at": now},
	}
}

// batchRows bounds rows per INSERT; Postgres accepts at most 65535 bind
// parameters per statement.
const batchRows = 1000

// CreateBatch inserts alerts in statements of at most batchRows rows and
// returns how many rows were written. Run it inside a transaction to keep the
// batch atomic.
func (r *Repo) CreateBatch(ctx context.Context, alerts []domain.ExposureAlert) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int64
	for start := 0; start < len(alerts); start += batchRows {
		chunk := alerts[start:min(start+batchRows, len(alerts))]

		insert := postgres.Builder.Insert(table).Columns(columns...)
		for _, a := range chunk {
			insert = insert.Values(a.ID, a.UserID, a.CreatedAt, a.ExpiresAt, a.AcknowledgedAt, a.SourceReportedAt)
		}

		tag, err := postgres.Exec(ctx, q, insert)
		if err != nil {
			return total, postgres.MapError(err, "exposure_alert batch", start)
		}
		total += tag.RowsAffected()
	}
	return total, nil
}

// HasActive reports whether user has at least one active alert at now.
func (r *Repo) HasActive(ctx context.Context, user uuid.UUID, now time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sub := postgres.Builder.Select("1").From(table).Where(activeFor(user, now))
	query := postgres.Builder.Select().Column(sq.Expr("EXISTS(?)", sub))

	var exists bool
	if err := postgres.Get(ctx, q, &exists, query); err != nil {
		return false, fmt.Errorf("check active alerts for %s: %w", user, err)
	}
	return exists, nil
}

// ListActive returns the active alerts of user at now, newest first.
func (r *Repo) ListActive(ctx context.Context, user uuid.UUID, now time.Time) ([]domain.ExposureAlert, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(activeFor(user, now)).
		OrderBy("created_at DESC", "id ASC")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list active alerts for %s: %w", user, err)
	}

	out := make([]domain.ExposureAlert, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// AcknowledgeActive sets acknowledged_at = now on every alert of user that is
// active at now, in one statement. Returns the number of rows updated.
func (r *Repo) AcknowledgeActive(ctx context.Context, user uuid.UUID, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Update(table).
		Set("acknowledged_at", now).
		Where(activeFor(user, now)))
	if err != nil {
		return 0, fmt.Errorf("acknowledge alerts for %s: %w", user, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpiredBefore removes alerts with expires_at < cutoff regardless of
// acknowledgement, returning the number of deleted rows.
func (r *Repo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Delete(table).
		Where(sq.Lt{"expires_at": cutoff}))
	if err != nil {
		return 0, fmt.Errorf("delete alerts expired before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}
