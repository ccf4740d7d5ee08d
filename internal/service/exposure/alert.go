package exposure

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/pkg/ctxutil"
)

// ReportPositive creates one alert for every distinct user the current user
// was in contact with during the contact window and returns how many were
// created. Repeated reports create new alerts each time.
func (s *Service) ReportPositive(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	alerts, err := s.reportPositive(ctx, userID, s.now().UTC())
	if err != nil {
		return 0, err
	}

	msgs := make([]domain.Message, 0, len(alerts))
	for _, a := range alerts {
		msgs = append(msgs, domain.Message{
			Subject: domain.SubjectExposureAlert,
			Payload: domain.ExposureAlertEvent{AlertID: a.ID, UserID: a.UserID, ExpiresAt: a.ExpiresAt},
		})
	}
	s.publish(ctx, msgs)
	s.metrics.PositiveReported(len(alerts))

	// Never log the reporter.
	s.log.InfoContext(ctx, "positive report processed", slog.Int("alerts_created", len(alerts)))

	return len(alerts), nil
}

func (s *Service) reportPositive(ctx context.Context, reporter uuid.UUID, now time.Time) ([]domain.ExposureAlert, error) {
	var alerts []domain.ExposureAlert

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		contacts, err := s.contacts.ListInvolving(ctx, reporter, now.Add(-s.window))
		if err != nil {
			return fmt.Errorf("list contacts: %w", err)
		}

		recipients := domain.DistinctContacts(contacts, reporter)
		if len(recipients) == 0 {
			return nil
		}

		alerts = make([]domain.ExposureAlert, 0, len(recipients))
		for _, user := range recipients {
			alerts = append(alerts, domain.NewExposureAlert(user, now, s.lifetime))
		}

		if _, err := s.alerts.CreateBatch(ctx, alerts); err != nil {
			return fmt.Errorf("create alerts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("report positive: %w", err)
	}

	return alerts, nil
}

// HasActiveAlerts reports whether the current user has an unacknowledged,
// unexpired alert.
func (s *Service) HasActiveAlerts(ctx context.Context) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	active, err := s.alerts.HasActive(ctx, userID, s.now().UTC())
	if err != nil {
		return false, fmt.Errorf("has active alerts: %w", err)
	}
	return active, nil
}

// ListActiveAlerts returns the current user's active alerts, newest first.
func (s *Service) ListActiveAlerts(ctx context.Context) ([]domain.ExposureAlert, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	alerts, err := s.alerts.ListActive(ctx, userID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	return alerts, nil
}

// AcknowledgeAll acknowledges every active alert of the current user in one
// statement. Acknowledging nothing is not an error.
func (s *Service) AcknowledgeAll(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.alerts.AcknowledgeActive(ctx, userID, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("acknowledge alerts: %w", err)
	}
	if n > 0 {
		s.metrics.AlertsAcknowledged(n)
		s.log.InfoContext(ctx, "alerts acknowledged",
			slog.String("user_id", userID.String()),
			slog.Int64("count", n),
		)
	}
	return n, nil
}
