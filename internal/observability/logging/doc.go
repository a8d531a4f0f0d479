// Package logging provides structured logging utilities with context propagation.
//
// It wraps log/slog with the helpers the service uses everywhere: a
// level/format aware constructor, request ID enrichment and a logger carried
// in the request context.
//
// Example usage:
//
//	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
//	slog.SetDefault(logger)
//
//	func (s *Service) Summarize(ctx context.Context, text string) {
//	    logging.FromContext(ctx).Info("summarizing", slog.Int("words", n))
//	}
package logging
