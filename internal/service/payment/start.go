package payment

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

// codeProviderError is recorded when the provider fails without a code.
const codeProviderError = "provider_error"

// StartPayment charges the remaining balance of one of the current user's
// bookings. The payment row is written before the provider is called so a
// provider failure still leaves an audit record; such failures are recorded
// on the row and reported through PaymentResult, not as an error.
func (s *Service) StartPayment(ctx context.Context, bookingID uuid.UUID) (PaymentResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return PaymentResult{}, domain.ErrUnauthorized
	}

	now := s.now().UTC()

	var (
		res     PaymentResult
		booking domain.Booking
		fin     FinalizeResult
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.bookings.LockForUser(ctx, bookingID, userID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}
		if !booking.IsPayable() {
			return domain.ErrNotPayable
		}

		paid, err := s.payments.SumSucceeded(ctx, booking.ID)
		if err != nil {
			return fmt.Errorf("sum payments: %w", err)
		}
		if booking.IsFullyPaid(paid) {
			return domain.ErrAlreadyPaid
		}

		p := domain.Payment{
			ID:          uuid.New(),
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			Provider:    s.provider.Name(),
			AmountCents: booking.RemainingCents(paid),
			Currency:    s.currency,
			Status:      domain.PaymentStatusRequiresAction,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.payments.Create(ctx, p); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if err := s.record(ctx, p.UserID, domain.EntityTypePayment, p.ID, domain.AuditActionCreate, map[string]any{
			"amount_cents": p.AmountCents,
			"currency":     p.Currency,
			"provider":     p.Provider,
		}, now); err != nil {
			return err
		}

		result, err := s.provider.CreateIntent(ctx, p)
		s.resolve(ctx, &p, result, err, now)

		if err := s.payments.UpdateState(ctx, p); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
		if err := s.recordState(ctx, p, now); err != nil {
			return err
		}

		if p.Status == domain.PaymentStatusSucceeded {
			if _, fin, err = s.finalize(ctx, booking.ID, now); err != nil {
				return err
			}
		}

		res = PaymentResult{Status: p.Status, Payment: &p, RedirectHint: result.RedirectURL}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyPaid) {
		return PaymentResult{Status: domain.PaymentStatusSucceeded, AlreadyPaid: true}, nil
	}
	if err != nil {
		return PaymentResult{}, fmt.Errorf("start payment: %w", err)
	}

	s.announce(ctx, changes{payment: res.Payment, finalized: fin, bookingID: booking.ID, userID: booking.UserID, at: now})

	s.log.InfoContext(ctx, "payment started",
		slog.String("booking_id", booking.ID.String()),
		slog.String("payment_id", res.Payment.ID.String()),
		slog.String("status", string(res.Status)),
	)
	return res, nil
}

// resolve applies a provider response to p. Provider failures mark the
// payment failed with their code instead of aborting the caller.
func (s *Service) resolve(ctx context.Context, p *domain.Payment, result domain.ProviderResult, err error, now time.Time) {
	p.UpdatedAt = now

	if err == nil {
		p.Apply(result)
		return
	}

	code := codeProviderError
	var perr *domain.ProviderError
	if errors.As(err, &perr) && perr.Code != "" {
		code = perr.Code
	}
	p.Fail(code)

	s.log.WarnContext(ctx, "provider call failed",
		slog.String("payment_id", p.ID.String()),
		slog.String("provider", p.Provider),
		slog.String("code", code),
		slog.String("error", err.Error()),
	)
}
