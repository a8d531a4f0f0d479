package http

import (
	"net/http"
	"strconv"
	"time"

	"resumen-backend/internal/handler/http/pathutil"
	"resumen-backend/internal/handler/http/responsewriter"
	"resumen-backend/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request count, duration, in-flight requests and
// body sizes. Paths are normalized to the known routes so label cardinality
// stays bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(
			r.Method,
			path,
			strconv.Itoa(rw.StatusCode()),
			time.Since(start),
			int(r.ContentLength),
			rw.BytesWritten(),
		)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
