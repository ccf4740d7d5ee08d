package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
	"github.com/heartmarshall/servicebook-backend/pkg/ctxutil"
)

type profileRepo interface {
	GetOrCreate(ctx context.Context, def domain.Profile) (domain.Profile, error)
}

// Service exposes the current user's profile.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	now      func() time.Time
}

// NewService creates a new profile service.
func NewService(log *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      log.With("service", "profile"),
		profiles: profiles,
		now:      time.Now,
	}
}

// GetOrCreate returns the current user's profile, creating the default one
// on first access.
func (s *Service) GetOrCreate(ctx context.Context) (domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Profile{}, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetOrCreate(ctx, domain.DefaultProfile(userID, s.now().UTC()))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get or create profile: %w", err)
	}
	return p, nil
}
