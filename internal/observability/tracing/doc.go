// Package tracing provides OpenTelemetry tracing integration.
//
// Init installs the process-wide tracer provider. Middleware opens one server
// span per HTTP request and echoes its trace ID in X-Trace-Id; the summary
// usecase opens a child span around the model call.
//
//	shutdown := tracing.Init(cfg.Version)
//	defer shutdown(context.Background())
package tracing
