package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"cognitive-screening-service/internal/observability/metrics"
)

// Instrument records request metrics and a structured log line per
// request. Labels use the route pattern, not the raw path, to keep
// cardinality bounded.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}

		m := metrics.DefaultMetrics
		m.HTTPRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(ww.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, pattern).Observe(duration.Seconds())

		log.Info().
			Str("method", r.Method).
			Str("path", pattern).
			Int("status", ww.Status()).
			Dur("duration", duration).
			Msg("HTTP request completed")
	})
}
