package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Invoice is an immutable snapshot issued once a booking is fully paid.
type Invoice struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	UserID        uuid.UUID
	Number        string
	IssuedAt      time.Time
	Currency      string
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	Meta          map[string]any
}

// InvoiceNumber renders the human-readable invoice number for a booking,
// e.g. INV-20261016-3F2504E04F8911D39A0C0305E82C3301.
func InvoiceNumber(issuedAt time.Time, bookingID uuid.UUID) string {
	compact := strings.ToUpper(strings.ReplaceAll(bookingID.String(), "-", ""))
	return "INV-" + issuedAt.UTC().Format("20060102") + "-" + compact
}

// NewInvoice snapshots totalCents for booking. No tax is applied.
func NewInvoice(booking Booking, totalCents int64, currency string, issuedAt time.Time, meta map[string]any) Invoice {
	return Invoice{
		ID:            uuid.New(),
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		Number:        InvoiceNumber(issuedAt, booking.ID),
		IssuedAt:      issuedAt,
		Currency:      currency,
		SubtotalCents: totalCents,
		TaxCents:      0,
		TotalCents:    totalCents,
		Meta:          meta,
	}
}
