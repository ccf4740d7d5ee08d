package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/pkg/ctxutil"
)

// SyncPayment refreshes one of the current user's payments from the provider
// and finalizes the booking when the payment has succeeded. Terminal payments
// are returned unchanged without contacting the provider. Replaying a sync is
// safe.
func (s *Service) SyncPayment(ctx context.Context, paymentID uuid.UUID) (PaymentResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return PaymentResult{}, domain.ErrUnauthorized
	}

	now := s.now().UTC()

	var (
		res     PaymentResult
		changed bool
		fin     FinalizeResult
		booking domain.Booking
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.payments.GetForUser(ctx, paymentID, userID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}
		if p.Status.IsTerminal() {
			res = PaymentResult{Status: p.Status, Payment: &p}
			return nil
		}

		result, err := s.provider.FetchStatus(ctx, p)
		s.resolve(ctx, &p, result, err, now)

		if err := s.payments.UpdateState(ctx, p); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
		if err := s.recordState(ctx, p, now); err != nil {
			return err
		}
		changed = true

		if p.Status == domain.PaymentStatusSucceeded {
			if booking, fin, err = s.finalize(ctx, p.BookingID, now); err != nil {
				return err
			}
		}

		res = PaymentResult{Status: p.Status, Payment: &p, RedirectHint: result.RedirectURL}
		return nil
	})
	if err != nil {
		return PaymentResult{}, fmt.Errorf("sync payment: %w", err)
	}

	if changed {
		s.announce(ctx, changes{payment: res.Payment, finalized: fin, bookingID: booking.ID, userID: booking.UserID, at: now})
		s.log.InfoContext(ctx, "payment synced",
			slog.String("payment_id", paymentID.String()),
			slog.String("status", string(res.Status)),
		)
	}
	return res, nil
}
