package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

// Finalize re-derives the paid total of a booking from its succeeded payments
// and, when the quote is covered, confirms a Pending booking and issues the
// invoice if none exists yet. Calling it again changes nothing.
func (s *Service) Finalize(ctx context.Context, bookingID uuid.UUID) (FinalizeResult, error) {
	now := s.now().UTC()

	var (
		res     FinalizeResult
		booking domain.Booking
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		booking, res, err = s.finalize(ctx, bookingID, now)
		return err
	})
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("finalize booking: %w", err)
	}

	s.announce(ctx, changes{finalized: res, bookingID: booking.ID, userID: booking.UserID, at: now})
	return res, nil
}

// finalize must run inside a transaction. The booking row lock serializes
// concurrent finalizers of the same booking; the unique invoice per booking
// is the storage-level backstop.
func (s *Service) finalize(ctx context.Context, bookingID uuid.UUID, now time.Time) (domain.Booking, FinalizeResult, error) {
	booking, err := s.bookings.Lock(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, FinalizeResult{}, fmt.Errorf("lock booking: %w", err)
	}

	paid, err := s.payments.SumSucceeded(ctx, booking.ID)
	if err != nil {
		return booking, FinalizeResult{}, fmt.Errorf("sum payments: %w", err)
	}
	if !booking.IsFullyPaid(paid) {
		return booking, FinalizeResult{}, nil
	}

	var res FinalizeResult

	res.Confirmed, err = s.bookings.TransitionStatus(ctx, booking.ID, domain.BookingStatusPending, domain.BookingStatusConfirmed, now)
	if err != nil {
		return booking, FinalizeResult{}, fmt.Errorf("confirm booking: %w", err)
	}
	if res.Confirmed {
		booking.Status = domain.BookingStatusConfirmed
		if err := s.record(ctx, booking.UserID, domain.EntityTypeBooking, booking.ID, domain.AuditActionUpdate, map[string]any{
			"status": map[string]any{"old": domain.BookingStatusPending, "new": domain.BookingStatusConfirmed},
		}, now); err != nil {
			return booking, FinalizeResult{}, err
		}
	}

	exists, err := s.invoices.ExistsForBooking(ctx, booking.ID)
	if err != nil {
		return booking, FinalizeResult{}, fmt.Errorf("check invoice: %w", err)
	}
	if exists {
		return booking, res, nil
	}

	inv := domain.NewInvoice(booking, paid, s.currency, now, map[string]any{
		"booking_id": booking.ID.String(),
		"user_id":    booking.UserID.String(),
		"user":       booking.OwnerUsername,
		"note":       "Auto-generated on successful payment.",
	})
	created, err := s.invoices.CreateIfAbsent(ctx, inv)
	if err != nil {
		return booking, FinalizeResult{}, fmt.Errorf("create invoice: %w", err)
	}
	if created {
		if err := s.record(ctx, booking.UserID, domain.EntityTypeInvoice, inv.ID, domain.AuditActionCreate, map[string]any{
			"number":      inv.Number,
			"total_cents": inv.TotalCents,
			"currency":    inv.Currency,
		}, now); err != nil {
			return booking, FinalizeResult{}, err
		}
		res.Invoice = &inv
		s.log.InfoContext(ctx, "invoice issued",
			slog.String("booking_id", booking.ID.String()),
			slog.String("number", inv.Number),
		)
	}

	return booking, res, nil
}
