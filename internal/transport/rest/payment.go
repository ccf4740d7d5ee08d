package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/internal/service/payment"
)

type paymentService interface {
	StartPayment(ctx context.Context, bookingID uuid.UUID) (payment.PaymentResult, error)
	SyncPayment(ctx context.Context, paymentID uuid.UUID) (payment.PaymentResult, error)
	ListBookingPayments(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error)
	GetInvoice(ctx context.Context, number string) (domain.Invoice, error)
}

// PaymentHandler serves payment and invoice endpoints.
type PaymentHandler struct {
	svc paymentService
	log *slog.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: logger.With("handler", "payment")}
}

type paymentResultResponse struct {
	Status       string  `json:"status"`
	PaymentID    *string `json:"paymentId,omitempty"`
	RedirectHint string  `json:"redirectHint"`
	AlreadyPaid  bool    `json:"alreadyPaid"`
	ErrorCode    string  `json:"errorCode,omitempty"`
}

type paymentResponse struct {
	ID               string    `json:"id"`
	BookingID        string    `json:"bookingId"`
	Provider         string    `json:"provider"`
	AmountCents      int64     `json:"amountCents"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	ProviderIntentID string    `json:"providerIntentId,omitempty"`
	ErrorCode        string    `json:"errorCode,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type invoiceResponse struct {
	Number        string         `json:"number"`
	BookingID     string         `json:"bookingId"`
	IssuedAt      time.Time      `json:"issuedAt"`
	Currency      string         `json:"currency"`
	SubtotalCents int64          `json:"subtotalCents"`
	TaxCents      int64          `json:"taxCents"`
	TotalCents    int64          `json:"totalCents"`
	Meta          map[string]any `json:"meta,omitempty"`
}

// Start handles POST /api/v1/bookings/{id}/payments.
func (h *PaymentHandler) Start(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.StartPayment(r.Context(), bookingID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResultResponse(res))
}

// Sync handles POST /api/v1/payments/{id}/sync.
func (h *PaymentHandler) Sync(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.SyncPayment(r.Context(), paymentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResultResponse(res))
}

// List handles GET /api/v1/bookings/{id}/payments.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	payments, err := h.svc.ListBookingPayments(r.Context(), bookingID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = paymentResponse{
			ID:               p.ID.String(),
			BookingID:        p.BookingID.String(),
			Provider:         p.Provider,
			AmountCents:      p.AmountCents,
			Currency:         p.Currency,
			Status:           string(p.Status),
			ProviderIntentID: p.ProviderIntentID,
			ErrorCode:        p.ErrorCode,
			CreatedAt:        p.CreatedAt,
			UpdatedAt:        p.UpdatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Invoice handles GET /api/v1/invoices/{number}.
func (h *PaymentHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.GetInvoice(r.Context(), r.PathValue("number"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoiceResponse{
		Number:        inv.Number,
		BookingID:     inv.BookingID.String(),
		IssuedAt:      inv.IssuedAt,
		Currency:      inv.Currency,
		SubtotalCents: inv.SubtotalCents,
		TaxCents:      inv.TaxCents,
		TotalCents:    inv.TotalCents,
		Meta:          inv.Meta,
	})
}

func toPaymentResultResponse(res payment.PaymentResult) paymentResultResponse {
	out := paymentResultResponse{
		Status:       string(res.Status),
		RedirectHint: res.RedirectHint,
		AlreadyPaid:  res.AlreadyPaid,
	}
	if res.Payment != nil {
		id := res.Payment.ID.String()
		out.PaymentID = &id
		out.ErrorCode = res.Payment.ErrorCode
	}
	return out
}
