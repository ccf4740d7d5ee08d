package middleware

import (
	"net/http"
	"time"
)

// unmatchedRoute labels requests no route pattern matched.
const unmatchedRoute = "unmatched"

type httpRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
	InflightInc()
	InflightDec()
}

// Metrics records request counts, latency and in-flight requests labelled by
// route pattern. It must wrap the http.ServeMux directly: the mux sets
// r.Pattern on the request it receives.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.InflightInc()
			defer rec.InflightDec()

			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			rec.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
