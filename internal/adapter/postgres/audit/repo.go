// Package audit implements the append-only payment audit log using PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/servicebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

type row struct {
	ID         uuid.UUID      `db:"id"`
	UserID     uuid.UUID      `db:"user_id"`
	EntityType string         `db:"entity_type"`
	EntityID   uuid.UUID      `db:"entity_id"`
	Action     string         `db:"action"`
	Changes    map[string]any `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r row) toDomain() domain.AuditRecord {
	return domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends rec. Inside a transaction the record commits or rolls back with
// the change it describes.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.UserID, string(rec.EntityType), rec.EntityID, string(rec.Action), changes, rec.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// ListByEntity returns the history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entity domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"entity_type": string(entity), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list audit records for %s %s: %w", entity, entityID, err)
	}

	out := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
