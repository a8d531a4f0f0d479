package summarizer

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Call results reported by ModelMetricsRecorder.RecordCall.
const (
	ResultSuccess = "success"
	ResultEmpty   = "empty"
	ResultError   = "error"
)

// ModelMetricsRecorder records measurements of model API calls.
// Implementations must be safe for concurrent use.
type ModelMetricsRecorder interface {
	// RecordCall records one model round trip and how it ended.
	RecordCall(provider, result string, duration time.Duration)

	// RecordOutputLength records the length of the raw model text in runes.
	RecordOutputLength(provider string, length int)
}

// PrometheusModelMetrics implements ModelMetricsRecorder using Prometheus metrics.
type PrometheusModelMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	length   *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusModelMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreate registers c with the default registry, or returns the
// collector already registered under the same descriptor.
func getOrCreate[T prometheus.Collector](c T) T {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// NewPrometheusModelMetrics returns the process-wide Prometheus recorder.
// The collectors are registered once no matter how often it is called.
func NewPrometheusModelMetrics() *PrometheusModelMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusModelMetrics{
			calls: getOrCreate(prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "model_calls_total",
				Help: "Total number of generative model calls by provider and result",
			}, []string{"provider", "result"})),
			duration: getOrCreate(prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "model_call_duration_seconds",
				Help:    "Time taken by a generative model call",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"provider"})),
			length: getOrCreate(prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "model_output_length_characters",
				Help:    "Distribution of raw model output lengths in characters (Unicode runes)",
				Buckets: []float64{100, 250, 500, 1000, 1500, 2000, 3000, 5000},
			}, []string{"provider"})),
		}
	})
	return prometheusMetricsInstance
}

// RecordCall implements ModelMetricsRecorder.RecordCall
func (p *PrometheusModelMetrics) RecordCall(provider, result string, duration time.Duration) {
	p.calls.WithLabelValues(provider, result).Inc()
	p.duration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordOutputLength implements ModelMetricsRecorder.RecordOutputLength
func (p *PrometheusModelMetrics) RecordOutputLength(provider string, length int) {
	p.length.WithLabelValues(provider).Observe(float64(length))
}
