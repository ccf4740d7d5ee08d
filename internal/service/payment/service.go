package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/config"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

type bookingRepo interface {
	GetForUser(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)
	LockForUser(ctx context.Context, id, userID uuid.UUID) (domain.Booking, error)
	Lock(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, now time.Time) (bool, error)
}

type paymentRepo interface {
	Create(ctx context.Context, p domain.Payment) error
	UpdateState(ctx context.Context, p domain.Payment) error
	GetForUser(ctx context.Context, id, userID uuid.UUID) (domain.Payment, error)
	SumSucceeded(ctx context.Context, bookingID uuid.UUID) (int64, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error)
}

type invoiceRepo interface {
	CreateIfAbsent(ctx context.Context, inv domain.Invoice) (bool, error)
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	GetByNumberForUser(ctx context.Context, number string, userID uuid.UUID) (domain.Invoice, error)
}

type auditLog interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

type provider interface {
	Name() string
	CreateIntent(ctx context.Context, p domain.Payment) (domain.ProviderResult, error)
	FetchStatus(ctx context.Context, p domain.Payment) (domain.ProviderResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, msgs ...domain.Message) error
}

type recorder interface {
	PaymentRecorded(status domain.PaymentStatus)
	BookingConfirmed()
	InvoiceIssued()
}

// Service takes bookings through payment, confirmation and invoicing.
type Service struct {
	log      *slog.Logger
	currency string
	tx       txManager
	bookings bookingRepo
	payments paymentRepo
	invoices invoiceRepo
	audit    auditLog
	provider provider
	events   publisher
	metrics  recorder
	now      func() time.Time
}

// NewService creates a new payment service.
func NewService(
	log *slog.Logger,
	cfg config.PaymentsConfig,
	tx txManager,
	bookings bookingRepo,
	payments paymentRepo,
	invoices invoiceRepo,
	audit auditLog,
	provider provider,
	events publisher,
	metrics recorder,
) *Service {
	return &Service{
		log:      log.With("service", "payment"),
		currency: cfg.Currency,
		tx:       tx,
		bookings: bookings,
		payments: payments,
		invoices: invoices,
		audit:    audit,
		provider: provider,
		events:   events,
		metrics:  metrics,
		now:      time.Now,
	}
}

// PaymentResult is the outcome of starting or syncing a payment.
type PaymentResult struct {
	Status       domain.PaymentStatus
	Payment      *domain.Payment // nil when AlreadyPaid
	RedirectHint string
	AlreadyPaid  bool
}

// FinalizeResult reports what a finalize pass changed.
type FinalizeResult struct {
	Confirmed bool
	Invoice   *domain.Invoice
}

// changes collects what a transaction did so it can be announced after commit.
type changes struct {
	payment   *domain.Payment
	finalized FinalizeResult
	bookingID uuid.UUID
	userID    uuid.UUID
	at        time.Time
}

func (s *Service) announce(ctx context.Context, c changes) {
	var msgs []domain.Message

	if p := c.payment; p != nil {
		s.metrics.PaymentRecorded(p.Status)
		msgs = append(msgs, domain.Message{
			Subject: domain.PaymentSubject(p.Status),
			Payload: domain.PaymentEvent{
				PaymentID:   p.ID,
				BookingID:   p.BookingID,
				UserID:      p.UserID,
				Status:      p.Status,
				AmountCents: p.AmountCents,
				Currency:    p.Currency,
				ErrorCode:   p.ErrorCode,
			},
		})
	}

	if c.finalized.Confirmed {
		s.metrics.BookingConfirmed()
		msgs = append(msgs, domain.Message{
			Subject: domain.SubjectBookingConfirmed,
			Payload: domain.BookingConfirmedEvent{BookingID: c.bookingID, UserID: c.userID, ConfirmedAt: c.at},
		})
	}

	if inv := c.finalized.Invoice; inv != nil {
		s.metrics.InvoiceIssued()
		msgs = append(msgs, domain.Message{
			Subject: domain.SubjectInvoiceIssued,
			Payload: domain.InvoiceIssuedEvent{
				InvoiceID:  inv.ID,
				Number:     inv.Number,
				BookingID:  inv.BookingID,
				UserID:     inv.UserID,
				TotalCents: inv.TotalCents,
				Currency:   inv.Currency,
			},
		})
	}

	if len(msgs) == 0 {
		return
	}
	if err := s.events.Publish(ctx, msgs...); err != nil {
		s.log.WarnContext(ctx, "publish events", slog.Int("count", len(msgs)), slog.String("error", err.Error()))
	}
}
