package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/internal/metrics"
)

type contactRepo interface {
	DeleteOccurredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type alertRepo interface {
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	Purged(kind string, n int64)
}

// Service deletes contact and alert data once it is no longer needed.
type Service struct {
	log      *slog.Logger
	tx       txManager
	contacts contactRepo
	alerts   alertRepo
	metrics  recorder
	now      func() time.Time
}

// NewService creates a new retention service.
func NewService(log *slog.Logger, tx txManager, contacts contactRepo, alerts alertRepo, metrics recorder) *Service {
	return &Service{
		log:      log.With("service", "retention"),
		tx:       tx,
		contacts: contacts,
		alerts:   alerts,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Result reports how many rows a purge removed.
type Result struct {
	ContactsDeleted int64
	AlertsDeleted   int64
}

// Purge deletes contacts older than contactRetention and alerts that expired
// more than alertRetention ago, acknowledged or not. Both sweeps commit
// together; on failure nothing is deleted and a zero Result is returned.
func (s *Service) Purge(ctx context.Context, contactRetention, alertRetention time.Duration) (Result, error) {
	if err := validateWindows(contactRetention, alertRetention); err != nil {
		return Result{}, err
	}

	now := s.now().UTC()

	var res Result
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error

		res.ContactsDeleted, err = s.contacts.DeleteOccurredBefore(ctx, now.Add(-contactRetention))
		if err != nil {
			return fmt.Errorf("purge contacts: %w", err)
		}

		res.AlertsDeleted, err = s.alerts.DeleteExpiredBefore(ctx, now.Add(-alertRetention))
		if err != nil {
			return fmt.Errorf("purge alerts: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "privacy purge failed", slog.String("error", err.Error()))
		return Result{}, fmt.Errorf("purge: %w", err)
	}

	s.metrics.Purged(metrics.PurgeKindContacts, res.ContactsDeleted)
	s.metrics.Purged(metrics.PurgeKindAlerts, res.AlertsDeleted)

	s.log.InfoContext(ctx, "privacy purge completed",
		slog.Duration("contact_retention", contactRetention),
		slog.Duration("alert_retention", alertRetention),
		slog.Int64("contacts_deleted", res.ContactsDeleted),
		slog.Int64("alerts_deleted", res.AlertsDeleted),
	)
	return res, nil
}

// ClearExpiredAlerts deletes alerts whose expiry is more than grace in the
// past. It is scheduled independently of Purge.
func (s *Service) ClearExpiredAlerts(ctx context.Context, grace time.Duration) (int64, error) {
	if grace < 0 {
		return 0, domain.NewValidationError("grace", "must not be negative")
	}

	n, err := s.alerts.DeleteExpiredBefore(ctx, s.now().UTC().Add(-grace))
	if err != nil {
		return 0, fmt.Errorf("clear expired alerts: %w", err)
	}

	s.metrics.Purged(metrics.PurgeKindExpiredAlerts, n)
	s.log.InfoContext(ctx, "expired alerts cleared",
		slog.Duration("grace", grace),
		slog.Int64("deleted", n),
	)
	return n, nil
}

func validateWindows(contactRetention, alertRetention time.Duration) error {
	var errs []domain.FieldError
	if contactRetention <= 0 {
		errs = append(errs, domain.FieldError{Field: "contact_retention", Message: "must be positive"})
	}
	if alertRetention <= 0 {
		errs = append(errs, domain.FieldError{Field: "alert_retention", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Days converts a whole number of days to a duration.
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
