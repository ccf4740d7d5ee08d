package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/pkg/ctxutil"
)

// GetInvoice returns one of the current user's invoices by number.
// Invoices of other users are reported as not found.
func (s *Service) GetInvoice(ctx context.Context, number string) (domain.Invoice, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Invoice{}, domain.ErrUnauthorized
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return domain.Invoice{}, domain.NewValidationError("number", "required")
	}

	inv, err := s.invoices.GetByNumberForUser(ctx, number, userID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListBookingPayments returns the payment ledger of one of the current
// user's bookings, oldest first.
func (s *Service) ListBookingPayments(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.bookings.GetForUser(ctx, bookingID, userID); err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	payments, err := s.payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
