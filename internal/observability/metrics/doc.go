// Package metrics provides the Prometheus collectors exposed on /metrics.
//
// Collectors are registered with the default registry at package init:
//   - HTTP request metrics (count, duration, in-flight, sizes)
//   - Summary metrics (outcomes, input words, summary words, ideas)
//
// SummaryRecorder adapts the summary collectors to the usecase layer:
//
//	svc := summary.NewService(model, cfg, summary.WithMetrics(metrics.NewSummaryRecorder()))
package metrics
