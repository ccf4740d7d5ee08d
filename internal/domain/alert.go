package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertState is the derived lifecycle state of an exposure alert.
type AlertState string

const (
	AlertStateActive       AlertState = "active"
	AlertStateAcknowledged AlertState = "acknowledged"
	AlertStateExpired      AlertState = "expired"
)

// ExposureAlert is an anonymized notice that the user was recently in contact
// with someone who reported a positive test. It never references the reporter.
type ExposureAlert struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CreatedAt      time.Time
	ExpiresAt      time.Time
	AcknowledgedAt *time.Time

	// SourceReportedAt is kept for auditing only and must not be rendered
	// to any user.
	SourceReportedAt *time.Time
}

// NewExposureAlert creates an active alert for user issued at now.
func NewExposureAlert(user uuid.UUID, now time.Time, lifetime time.Duration) ExposureAlert {
	reported := now
	return ExposureAlert{
		ID:               uuid.New(),
		UserID:           user,
		CreatedAt:        now,
		ExpiresAt:        now.Add(lifetime),
		SourceReportedAt: &reported,
	}
}

// State returns the alert state at now. Acknowledgement wins over expiry.
func (a ExposureAlert) State(now time.Time) AlertState {
	switch {
	case a.AcknowledgedAt != nil:
		return AlertStateAcknowledged
	case !a.ExpiresAt.After(now):
		return AlertStateExpired
	default:
		return AlertStateActive
	}
}

// IsActive reports whether the alert is unacknowledged and unexpired at now.
func (a ExposureAlert) IsActive(now time.Time) bool {
	return a.State(now) == AlertStateActive
}
