// Package sandbox is the development payment provider. It never talks to a
// network and never handles card data; outcomes are chosen by Mode.
package sandbox

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

// Name is the provider identity stored on payment rows.
const Name = "sandbox"

// Mode selects how the sandbox resolves intents.
type Mode string

const (
	// ModeSucceed settles every intent immediately.
	ModeSucceed Mode = "succeed"
	// ModeRequiresAction leaves intents waiting for the customer; FetchStatus
	// then settles them.
	ModeRequiresAction Mode = "requires_action"
	// ModeDecline fails every intent with a card_declined code.
	ModeDecline Mode = "decline"
	// ModeUnavailable makes every call fail with a ProviderError.
	ModeUnavailable Mode = "unavailable"
)

// ErrUnavailable is the cause wrapped by ProviderError in ModeUnavailable.
var ErrUnavailable = errors.New("sandbox provider unavailable")

const checkoutURL = "https://sandbox.invalid/checkout/"

// Provider implements the payment provider contract for development.
type Provider struct {
	mode Mode
	log  *slog.Logger
}

// NewProvider creates a sandbox Provider. An empty mode means ModeSucceed.
func NewProvider(logger *slog.Logger, mode Mode) *Provider {
	if mode == "" {
		mode = ModeSucceed
	}
	return &Provider{
		mode: mode,
		log:  logger.With("adapter", "sandbox"),
	}
}

// Name returns the provider identity.
func (p *Provider) Name() string { return Name }

// CreateIntent registers a payment intent for p.
func (p *Provider) CreateIntent(ctx context.Context, payment domain.Payment) (domain.ProviderResult, error) {
	p.log.DebugContext(ctx, "sandbox create intent",
		slog.String("payment_id", payment.ID.String()),
		slog.Int64("amount_cents", payment.AmountCents),
		slog.String("mode", string(p.mode)),
	)

	if p.mode == ModeUnavailable {
		return domain.ProviderResult{}, &domain.ProviderError{Code: "provider_unavailable", Err: ErrUnavailable}
	}
	if payment.AmountCents <= 0 {
		return domain.ProviderResult{}, &domain.ProviderError{Code: "invalid_amount"}
	}

	intentID := newRef("sbox_intent_")
	switch p.mode {
	case ModeRequiresAction:
		return domain.ProviderResult{
			IntentID:    intentID,
			Status:      domain.PaymentStatusRequiresAction,
			RedirectURL: checkoutURL + intentID,
		}, nil
	case ModeDecline:
		return domain.ProviderResult{
			IntentID:  intentID,
			Status:    domain.PaymentStatusFailed,
			ErrorCode: "card_declined",
		}, nil
	default:
		return domain.ProviderResult{
			IntentID: intentID,
			ChargeID: newRef("sbox_charge_"),
			Status:   domain.PaymentStatusSucceeded,
		}, nil
	}
}

// FetchStatus reports the current state of the intent behind payment.
// Outside ModeDecline and ModeUnavailable, intents settle on first fetch.
func (p *Provider) FetchStatus(ctx context.Context, payment domain.Payment) (domain.ProviderResult, error) {
	p.log.DebugContext(ctx, "sandbox fetch status",
		slog.String("payment_id", payment.ID.String()),
		slog.String("intent_id", payment.ProviderIntentID),
	)

	switch p.mode {
	case ModeUnavailable:
		return domain.ProviderResult{}, &domain.ProviderError{Code: "provider_unavailable", Err: ErrUnavailable}
	case ModeDecline:
		return domain.ProviderResult{
			IntentID:  orNew(payment.ProviderIntentID, "sbox_intent_"),
			Status:    domain.PaymentStatusFailed,
			ErrorCode: "card_declined",
		}, nil
	default:
		return domain.ProviderResult{
			IntentID: orNew(payment.ProviderIntentID, "sbox_intent_"),
			ChargeID: orNew(payment.ProviderChargeID, "sbox_charge_"),
			Status:   domain.PaymentStatusSucceeded,
		}, nil
	}
}

func orNew(ref, prefix string) string {
	if ref != "" {
		return ref
	}
	return newRef(prefix)
}

// newRef returns prefix followed by 16 random hex characters.
func newRef(prefix string) string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("sandbox: read random: %v", err))
	}
	return prefix + hex.EncodeToString(b[:])
}
