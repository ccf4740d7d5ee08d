package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the provider-resolved state of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusRequiresAction PaymentStatus = "requires_action"
	PaymentStatusProcessing     PaymentStatus = "processing"
	PaymentStatusSucceeded      PaymentStatus = "succeeded"
	PaymentStatusFailed         PaymentStatus = "failed"
	PaymentStatusRefunded       PaymentStatus = "refunded"
	PaymentStatusCanceled       PaymentStatus = "canceled"
)

// IsValid reports whether s is a known status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusRequiresAction, PaymentStatusProcessing, PaymentStatusSucceeded,
		PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether the provider will not move the payment any further.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusCanceled:
		return true
	}
	return false
}

// Payment is one attempt to pay (part of) a booking's quoted price.
// Card data is never stored; only provider references.
type Payment struct {
	ID               uuid.UUID
	BookingID        uuid.UUID
	UserID           uuid.UUID
	Provider         string
	AmountCents      int64
	Currency         string
	ProviderIntentID string
	ProviderChargeID string
	Status           PaymentStatus
	ErrorCode        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProviderResult is what a payment provider reports for an intent.
type ProviderResult struct {
	IntentID    string
	ChargeID    string
	Status      PaymentStatus
	ErrorCode   string
	RedirectURL string
}

// Apply copies provider references and status onto the payment.
// Empty references do not overwrite ones already known.
func (p *Payment) Apply(r ProviderResult) {
	if r.IntentID != "" {
		p.ProviderIntentID = r.IntentID
	}
	if r.ChargeID != "" {
		p.ProviderChargeID = r.ChargeID
	}
	if r.Status.IsValid() {
		p.Status = r.Status
	}
	p.ErrorCode = r.ErrorCode
}

// Fail marks the payment failed with the provider error code.
func (p *Payment) Fail(code string) {
	p.Status = PaymentStatusFailed
	p.ErrorCode = code
}
