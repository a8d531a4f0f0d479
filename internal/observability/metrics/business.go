package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Summary metrics track what the /resumir endpoint does with each text
var (
	// SummaryRequestsTotal counts summarize calls by outcome
	// (passthrough, summarized, rejected, no_summary, error)
	SummaryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_requests_total",
			Help: "Total number of summarize requests by outcome",
		},
		[]string{"outcome"},
	)

	// SummaryInputWords measures the word count of accepted input texts
	SummaryInputWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_input_words",
			Help:    "Word count of accepted input texts",
			Buckets: []float64{20, 50, 100, 200, 400, 800, 1600, 3200, 6400, 12800, 24000},
		},
	)

	// SummaryOutputWords measures the word count of generated summaries
	SummaryOutputWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_output_words",
			Help:    "Word count of generated summaries after truncation",
			Buckets: []float64{25, 50, 100, 150, 200, 250, 300, 350},
		},
	)

	// SummaryIdeasCount measures how many main ideas were extracted
	SummaryIdeasCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_ideas_count",
			Help:    "Number of main ideas extracted per summary",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		},
	)
)

// SummaryRecorder reports summary use-case measurements to Prometheus.
// The zero value is ready to use.
type SummaryRecorder struct{}

// NewSummaryRecorder returns a recorder backed by the package collectors.
func NewSummaryRecorder() SummaryRecorder {
	return SummaryRecorder{}
}

// RecordOutcome counts one summarize call with the given outcome label.
func (SummaryRecorder) RecordOutcome(outcome string) {
	SummaryRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordInputWords observes the word count of an accepted text.
func (SummaryRecorder) RecordInputWords(words int) {
	SummaryInputWords.Observe(float64(words))
}

// RecordResult observes the size of a generated summary.
func (SummaryRecorder) RecordResult(summaryWords, ideas int) {
	SummaryOutputWords.Observe(float64(summaryWords))
	SummaryIdeasCount.Observe(float64(ideas))
}
