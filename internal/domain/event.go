package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event subjects, relative to the configured prefix.
const (
	SubjectBookingConfirmed = "bookings.confirmed"
	SubjectInvoiceIssued    = "invoices.issued"
	SubjectExposureAlert    = "exposure.alert"
)

// PaymentSubject returns the subject for a payment reaching status.
func PaymentSubject(status PaymentStatus) string {
	return "payments." + string(status)
}

// PaymentEvent is published whenever a payment attempt is recorded or resolved.
type PaymentEvent struct {
	PaymentID   uuid.UUID     `json:"payment_id"`
	BookingID   uuid.UUID     `json:"booking_id"`
	UserID      uuid.UUID     `json:"user_id"`
	Status      PaymentStatus `json:"status"`
	AmountCents int64         `json:"amount_cents"`
	Currency    string        `json:"currency"`
	ErrorCode   string        `json:"error_code,omitempty"`
}

// BookingConfirmedEvent is published when payment completion confirms a booking.
type BookingConfirmedEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// InvoiceIssuedEvent is published once per issued invoice.
type InvoiceIssuedEvent struct {
	InvoiceID  uuid.UUID `json:"invoice_id"`
	Number     string    `json:"number"`
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
}

// ExposureAlertEvent notifies a single recipient. It deliberately has no
// field that could identify the reporting user.
type ExposureAlertEvent struct {
	AlertID   uuid.UUID `json:"alert_id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Message pairs an event payload with its subject.
type Message struct {
	Subject string
	Payload any
}
