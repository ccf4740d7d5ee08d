package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

type profileService interface {
	GetOrCreate(ctx context.Context) (domain.Profile, error)
}

// ProfileHandler serves the current user's profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	UserID            string `json:"userId"`
	Name              string `json:"name"`
	Language          string `json:"language"`
	ConsentMarketing  bool   `json:"consentMarketing"`
	ConsentHealthData bool   `json:"consentHealthData"`
	ConsentVersion    string `json:"consentVersion"`
}

// Get handles GET /api/v1/me/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetOrCreate(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{
		UserID:            p.UserID.String(),
		Name:              p.Name,
		Language:          p.Language,
		ConsentMarketing:  p.ConsentMarketing,
		ConsentHealthData: p.ConsentHealthData,
		ConsentVersion:    p.ConsentVersion,
	})
}
