package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestSummaryRecorder_RecordOutcome(t *testing.T) {
	r := NewSummaryRecorder()

	for _, outcome := range []string{"passthrough", "summarized", "rejected", "no_summary", "error"} {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(SummaryRequestsTotal.WithLabelValues(outcome))
			r.RecordOutcome(outcome)
			after := testutil.ToFloat64(SummaryRequestsTotal.WithLabelValues(outcome))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestSummaryRecorder_RecordInputWords(t *testing.T) {
	r := NewSummaryRecorder()

	before := histogramCount(t, SummaryInputWords)
	r.RecordInputWords(500)
	r.RecordInputWords(25)
	assert.Equal(t, before+2, histogramCount(t, SummaryInputWords))
}

func TestSummaryRecorder_RecordResult(t *testing.T) {
	r := NewSummaryRecorder()

	beforeWords := histogramCount(t, SummaryOutputWords)
	beforeIdeas := histogramCount(t, SummaryIdeasCount)

	r.RecordResult(350, 5)

	assert.Equal(t, beforeWords+1, histogramCount(t, SummaryOutputWords))
	assert.Equal(t, beforeIdeas+1, histogramCount(t, SummaryIdeasCount))
}

func TestSummaryRecorder_ZeroValue(t *testing.T) {
	var r SummaryRecorder
	assert.NotPanics(t, func() {
		r.RecordOutcome("summarized")
		r.RecordInputWords(0)
		r.RecordResult(0, 0)
	})
}
