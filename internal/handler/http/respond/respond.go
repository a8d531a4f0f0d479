// Package respond writes JSON responses and error bodies.
// Error details are sanitized before they are logged or returned so provider
// credentials never leave the process.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"resumen-backend/internal/observability/logging"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes {"error": err.Error()} with the given status code.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorResponse{Error: err.Error()})
}

// Message writes {"error": msg} with the given status code.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorResponse{Error: msg})
}

// safePhrases mark errors whose text is fit for clients.
var safePhrases = []string{
	"required",
	"invalid",
	"not found",
	"not allowed",
	"must be",
	"cannot be",
	"too large",
}

// SafeError returns 4xx errors whose message looks like a validation problem
// as is. Everything else, and every 5xx, is logged and replaced by a generic
// "internal server error".
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	if code < http.StatusInternalServerError {
		lowerMsg := strings.ToLower(msg)
		for _, safe := range safePhrases {
			if strings.Contains(lowerMsg, safe) {
				isSafe = true
				break
			}
		}
	}

	if isSafe {
		Message(w, code, msg)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Message(w, code, "internal server error")
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// AppErr writes an AppError found in err's chain: its sanitized user message
// with its status code. The internal error is logged with the request-scoped
// logger. Errors that are not AppErrors fall back to SafeError with code.
func AppErr(ctx context.Context, w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		SafeError(w, code, err)
		return
	}

	if appErr.Err != nil {
		level := slog.LevelWarn
		if appErr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logging.FromContext(ctx).Log(ctx, level, "application error",
			slog.String("status", http.StatusText(appErr.Code)),
			slog.Int("code", appErr.Code),
			slog.String("user_message", SanitizeMessage(appErr.UserMsg)),
			slog.String("error", SanitizeError(appErr.Err)))
	}
	Message(w, appErr.Code, SanitizeMessage(appErr.UserMsg))
}
