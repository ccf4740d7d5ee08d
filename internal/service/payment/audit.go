package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

// record appends to the audit trail in the caller's transaction. A failed
// write aborts the transaction.
func (s *Service) record(ctx context.Context, userID uuid.UUID, entity domain.EntityType, id uuid.UUID, action domain.AuditAction, changes map[string]any, now time.Time) error {
	if err := s.audit.Log(ctx, domain.NewAuditRecord(userID, entity, id, action, changes, now)); err != nil {
		return fmt.Errorf("audit %s: %w", entity, err)
	}
	return nil
}

func (s *Service) recordState(ctx context.Context, p domain.Payment, now time.Time) error {
	changes := map[string]any{"status": p.Status}
	if p.ErrorCode != "" {
		changes["error_code"] = p.ErrorCode
	}
	return s.record(ctx, p.UserID, domain.EntityTypePayment, p.ID, domain.AuditActionUpdate, changes, now)
}
