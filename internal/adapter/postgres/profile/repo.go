// Package profile implements per-user profile persistence using PostgreSQL.
package profile

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const table = "profiles"

var columns = []string{
	"user_id", "name", "language", "consent_marketing", "consent_health_data",
	"consent_version", "created_at", "updated_at",
}

type row struct {
	UserID            uuid.UUID `db:"user_id"`
	Name              string    `db:"name"`
	Language          string    `db:"language"`
	ConsentMarketing  bool      `db:"consent_marketing"`
	ConsentHealthData bool      `db:"consent_health_data"`
	ConsentVersion    string    `db:"consent_version"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetOrCreate inserts def when the user has no profile yet and returns the
// stored profile. Concurrent first accesses converge on a single row.
func (r *Repo) GetOrCreate(ctx context.Context, def domain.Profile) (domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(def.UserID, def.Name, def.Language, def.ConsentMarketing, def.ConsentHealthData,
			def.ConsentVersion, def.CreatedAt, def.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING"))
	if err != nil {
		return domain.Profile{}, postgres.MapError(err, "profile", def.UserID)
	}

	var rw row
	err = postgres.Get(ctx, q, &rw, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": def.UserID}))
	if err != nil {
		return domain.Profile{}, postgres.MapError(err, "profile", def.UserID)
	}

	return domain.Profile{
		UserID:            rw.UserID,
		Name:              rw.Name,
		Language:          rw.Language,
		ConsentMarketing:  rw.ConsentMarketing,
		ConsentHealthData: rw.ConsentHealthData,
		ConsentVersion:    rw.ConsentVersion,
		CreatedAt:         rw.CreatedAt,
		UpdatedAt:         rw.UpdatedAt,
	}, nil
}
