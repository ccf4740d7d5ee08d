package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the aggregate an audit record refers to.
type EntityType string

const (
	EntityTypeBooking EntityType = "booking"
	EntityTypePayment EntityType = "payment"
	EntityTypeInvoice EntityType = "invoice"
)

// AuditAction is the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

// IsValid reports whether a is a known action.
func (a AuditAction) IsValid() bool {
	return a == AuditActionCreate || a == AuditActionUpdate
}

// AuditRecord is one append-only entry of the payment audit trail.
// Exposure data (contacts, alerts, reports) is never audited.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// NewAuditRecord builds a record with a fresh ID.
func NewAuditRecord(userID uuid.UUID, entity EntityType, entityID uuid.UUID, action AuditAction, changes map[string]any, at time.Time) AuditRecord {
	return AuditRecord{
		ID:         uuid.New(),
		UserID:     userID,
		EntityType: entity,
		EntityID:   entityID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  at,
	}
}
