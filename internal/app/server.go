package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/servicebook-backend/internal/auth"
	"github.com/heartmarshall/servicebook-backend/internal/config"
	"github.com/heartmarshall/servicebook-backend/internal/metrics"
	"github.com/heartmarshall/servicebook-backend/internal/transport/middleware"
	"github.com/heartmarshall/servicebook-backend/internal/transport/rest"
)

type server struct {
	handler http.Handler
	limiter *middleware.RateLimiter // nil when rate limiting is disabled
}

// newServer mounts handlers behind the middleware chain. Metrics wraps the
// mux directly so that it sees the matched route pattern.
func newServer(cfg *config.Config, logger *slog.Logger, h rest.Handlers, jwt *auth.JWTManager, m *metrics.Metrics) *server {
	if cfg.Metrics.Enabled {
		h.Metrics = m.Handler()
		h.MetricsPath = cfg.Metrics.Path
	}

	var limiter *middleware.RateLimiter
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		limit = limiter.Limit()
	}

	handler := middleware.Wrap(rest.NewRouter(h),
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Auth(jwt),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Metrics(m),
	)

	return &server{handler: handler, limiter: limiter}
}
