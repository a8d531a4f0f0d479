package summarizer

import (
	"sync"
	"time"
)

type recordedCall struct {
	provider string
	result   string
}

// recordingMetrics captures model metrics for assertions.
type recordingMetrics struct {
	mu      sync.Mutex
	calls   []recordedCall
	lengths []int
}

func (r *recordingMetrics) RecordCall(provider, result string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{provider: provider, result: result})
}

func (r *recordingMetrics) RecordOutputLength(_ string, length int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lengths = append(r.lengths, length)
}

func (r *recordingMetrics) results() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.result)
	}
	return out
}
