// Package observability groups the service's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog constructors and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic and summaries
//   - tracing: OpenTelemetry provider setup and HTTP span middleware
package observability
