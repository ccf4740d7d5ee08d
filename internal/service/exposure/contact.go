package exposure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/pkg/ctxutil"
)

// RecordContactInput describes one in-person contact.
type RecordContactInput struct {
	UserA      uuid.UUID
	UserB      uuid.UUID
	OccurredAt time.Time // zero means now
	BookingID  *uuid.UUID
}

// RecordContact stores a contact between two distinct users.
// Nothing is written when both participants are the same user.
func (s *Service) RecordContact(ctx context.Context, in RecordContactInput) (domain.ContactEvent, error) {
	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	contact, err := domain.NewContactEvent(in.UserA, in.UserB, occurredAt.UTC(), in.BookingID)
	if err != nil {
		return domain.ContactEvent{}, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return domain.ContactEvent{}, fmt.Errorf("record contact: %w", err)
	}
	s.metrics.ContactRecorded()

	return contact, nil
}

// CheckIn records a contact between the current user and the owner of the
// booking. Any authenticated user may check in to any booking; checking in to
// one's own booking is a no-op and reports recorded=false.
func (s *Service) CheckIn(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("get booking: %w", err)
	}

	_, err = s.RecordContact(ctx, RecordContactInput{
		UserA:     userID,
		UserB:     booking.UserID,
		BookingID: &booking.ID,
	})
	if errors.Is(err, domain.ErrInvalidContact) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "check-in recorded",
		slog.String("booking_id", booking.ID.String()),
	)
	return true, nil
}
