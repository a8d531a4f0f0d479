package summarizer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumen-backend/internal/usecase/summary"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "noop", cfg: Config{Provider: ProviderNoOp}, want: ProviderNoOp},
		{name: "claude", cfg: Config{Provider: ProviderClaude, APIKey: "k"}, want: ProviderClaude},
		{name: "openai", cfg: Config{Provider: "OPENAI", APIKey: "k"}, want: ProviderOpenAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(context.Background(), tt.cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = p.Close() })
			assert.Equal(t, tt.want, p.Name())
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "gemini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid summarizer configuration")

	_, err = New(context.Background(), Config{Provider: "llama", APIKey: "k"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestProvidersImplementModel(t *testing.T) {
	var _ summary.Model = (*Gemini)(nil)
	var _ summary.Model = (*Claude)(nil)
	var _ summary.Model = (*OpenAI)(nil)
	var _ summary.Model = (*NoOp)(nil)

	var _ Provider = (*Gemini)(nil)
	var _ Provider = (*Claude)(nil)
	var _ Provider = (*OpenAI)(nil)
	var _ Provider = (*NoOp)(nil)
}

func TestObserve(t *testing.T) {
	failure := errors.New("boom")

	tests := []struct {
		name       string
		out        string
		err        error
		wantResult string
		wantLength []int
	}{
		{name: "success", out: "ñandú", wantResult: ResultSuccess, wantLength: []int{5}},
		{name: "blank text", out: " \n", wantResult: ResultEmpty},
		{name: "empty generation error", err: fmt.Errorf("x: %w", summary.ErrEmptyGeneration), wantResult: ResultEmpty},
		{name: "failure", err: failure, wantResult: ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &recordingMetrics{}
			out, err := observe(context.Background(), m, "test", time.Now(), tt.out, tt.err)

			assert.Equal(t, tt.out, out)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, []string{tt.wantResult}, m.results())
			assert.Equal(t, tt.wantLength, m.lengths)
		})
	}
}

func TestNewPrometheusModelMetrics_Singleton(t *testing.T) {
	a := NewPrometheusModelMetrics()
	b := NewPrometheusModelMetrics()
	assert.Same(t, a, b)
}

func TestPrometheusModelMetrics_RecordCall(t *testing.T) {
	p := NewPrometheusModelMetrics()
	counter := p.calls.WithLabelValues("unit", ResultSuccess)
	before := testutil.ToFloat64(counter)

	hist, ok := p.length.WithLabelValues("unit").(prometheus.Metric)
	require.True(t, ok)
	var m dto.Metric
	require.NoError(t, hist.Write(&m))
	beforeSamples := m.GetHistogram().GetSampleCount()

	p.RecordCall("unit", ResultSuccess, 2*time.Second)
	p.RecordOutputLength("unit", 800)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	require.NoError(t, hist.Write(&m))
	assert.Equal(t, beforeSamples+1, m.GetHistogram().GetSampleCount())
}
