package exposure

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/config"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

type contactRepo interface {
	Create(ctx context.Context, c domain.ContactEvent) error
	ListInvolving(ctx context.Context, user uuid.UUID, since time.Time) ([]domain.ContactEvent, error)
}

type alertRepo interface {
	CreateBatch(ctx context.Context, alerts []domain.ExposureAlert) (int64, error)
	HasActive(ctx context.Context, user uuid.UUID, now time.Time) (bool, error)
	ListActive(ctx context.Context, user uuid.UUID, now time.Time) ([]domain.ExposureAlert, error)
	AcknowledgeActive(ctx context.Context, user uuid.UUID, now time.Time) (int64, error)
}

type bookingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, msgs ...domain.Message) error
}

type recorder interface {
	ContactRecorded()
	PositiveReported(alerts int)
	AlertsAcknowledged(n int64)
}

// Service records contacts and fans out anonymous exposure alerts.
type Service struct {
	log      *slog.Logger
	window   time.Duration
	lifetime time.Duration
	tx       txManager
	contacts contactRepo
	alerts   alertRepo
	bookings bookingRepo
	events   publisher
	metrics  recorder
	now      func() time.Time
}

// NewService creates a new exposure service. The contact window and alert
// lifetime come from cfg.
func NewService(
	log *slog.Logger,
	cfg config.ExposureConfig,
	tx txManager,
	contacts contactRepo,
	alerts alertRepo,
	bookings bookingRepo,
	events publisher,
	metrics recorder,
) *Service {
	return &Service{
		log:      log.With("service", "exposure"),
		window:   cfg.ContactWindow,
		lifetime: cfg.AlertLifetime,
		tx:       tx,
		contacts: contacts,
		alerts:   alerts,
		bookings: bookings,
		events:   events,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *Service) publish(ctx context.Context, msgs []domain.Message) {
	if len(msgs) == 0 {
		return
	}
	if err := s.events.Publish(ctx, msgs...); err != nil {
		s.log.WarnContext(ctx, "publish events", slog.Int("count", len(msgs)), slog.String("error", err.Error()))
	}
}
