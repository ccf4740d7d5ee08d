package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger defines the minimal interface for dependency health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// Check is one dependency probed by the health endpoints. A failing optional
// check degrades the service without making it unready.
type Check struct {
	Name     string
	Pinger   pinger
	Optional bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, timeout: 3 * time.Second}
}

// HealthResponse is the JSON response for the health endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready is the readiness probe: 503 when a required dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context())

	code := http.StatusOK
	if status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports every dependency with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context())

	code := http.StatusOK
	if status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	overall := statusOK
	components := make(map[string]CompStatus, len(h.checks))

	for _, c := range h.checks {
		start := time.Now()
		if err := c.Pinger.Ping(ctx); err != nil {
			components[c.Name] = CompStatus{Status: statusDown}
			if !c.Optional {
				overall = statusDown
			} else if overall == statusOK {
				overall = statusDegraded
			}
			continue
		}
		components[c.Name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}

	return overall, components
}
