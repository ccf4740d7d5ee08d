package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

type exposureService interface {
	CheckIn(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ReportPositive(ctx context.Context) (int, error)
	HasActiveAlerts(ctx context.Context) (bool, error)
	ListActiveAlerts(ctx context.Context) ([]domain.ExposureAlert, error)
	AcknowledgeAll(ctx context.Context) (int64, error)
}

// ExposureHandler serves check-in, positive reports and alert endpoints.
type ExposureHandler struct {
	svc exposureService
	log *slog.Logger
}

// NewExposureHandler creates an ExposureHandler.
func NewExposureHandler(svc exposureService, logger *slog.Logger) *ExposureHandler {
	return &ExposureHandler{svc: svc, log: logger.With("handler", "exposure")}
}

// alertResponse never includes the source report time or anything that
// could identify the reporter.
type alertResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CheckIn handles POST /api/v1/bookings/{id}/checkin.
func (h *ExposureHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	recorded, err := h.svc.CheckIn(r.Context(), bookingID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"recorded": recorded})
}

// Report handles POST /api/v1/exposure/report.
func (h *ExposureHandler) Report(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ReportPositive(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"alertsCreated": n})
}

// Status handles GET /api/v1/exposure/status.
func (h *ExposureHandler) Status(w http.ResponseWriter, r *http.Request) {
	active, err := h.svc.HasActiveAlerts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exposureWarning": active})
}

// Alerts handles GET /api/v1/exposure/alerts.
func (h *ExposureHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.ListActiveAlerts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = alertResponse{ID: a.ID.String(), CreatedAt: a.CreatedAt, ExpiresAt: a.ExpiresAt}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Acknowledge handles POST /api/v1/exposure/acknowledge.
func (h *ExposureHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.AcknowledgeAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"acknowledged": n})
}
