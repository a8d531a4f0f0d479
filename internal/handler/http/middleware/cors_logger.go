package middleware

import (
	"context"
	"log/slog"
)

// SlogAdapter adapts a *slog.Logger to the CORSLogger interface.
//
//	logger := &SlogAdapter{Logger: slog.Default()}
//	logger.Warn("CORS: origin not allowed", map[string]interface{}{"origin": "http://evil.test"})
type SlogAdapter struct {
	Logger *slog.Logger
}

// Info logs at info level.
func (a *SlogAdapter) Info(msg string, fields map[string]interface{}) {
	a.log(slog.LevelInfo, msg, fields)
}

// Warn logs at warn level.
func (a *SlogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.log(slog.LevelWarn, msg, fields)
}

// Debug logs at debug level.
func (a *SlogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.log(slog.LevelDebug, msg, fields)
}

func (a *SlogAdapter) log(level slog.Level, msg string, fields map[string]interface{}) {
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	a.Logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// NoOpLogger discards every message.
type NoOpLogger struct{}

// Info does nothing.
func (l *NoOpLogger) Info(msg string, fields map[string]interface{}) {}

// Warn does nothing.
func (l *NoOpLogger) Warn(msg string, fields map[string]interface{}) {}

// Debug does nothing.
func (l *NoOpLogger) Debug(msg string, fields map[string]interface{}) {}
