package rest

import (
	"net/http"

	"github.com/heartmarshall/servicebook-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts. Metrics may be nil.
type Handlers struct {
	Health      *HealthHandler
	Exposure    *ExposureHandler
	Payment     *PaymentHandler
	Profile     *ProfileHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers all routes. Every /api/v1 route requires an
// authenticated user; middleware.Auth must run before the mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	if h.Metrics != nil {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}

	api := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireUser(fn))
	}

	api("POST /api/v1/bookings/{id}/checkin", h.Exposure.CheckIn)
	api("POST /api/v1/exposure/report", h.Exposure.Report)
	api("GET /api/v1/exposure/status", h.Exposure.Status)
	api("GET /api/v1/exposure/alerts", h.Exposure.Alerts)
	api("POST /api/v1/exposure/acknowledge", h.Exposure.Acknowledge)

	api("POST /api/v1/bookings/{id}/payments", h.Payment.Start)
	api("GET /api/v1/bookings/{id}/payments", h.Payment.List)
	api("POST /api/v1/payments/{id}/sync", h.Payment.Sync)
	api("GET /api/v1/invoices/{number}", h.Payment.Invoice)

	api("GET /api/v1/me/profile", h.Profile.Get)

	return mux
}
