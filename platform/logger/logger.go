// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// NotificationEvent logs the outcome of a best-effort notification send.
// Failures are logged here and nowhere else; they never reach the caller.
func (l *Logger) NotificationEvent(event, toEmail string, success bool, reason string) {
	if success {
		l.Info("notification_event",
			slog.String("event", event),
			slog.String("to", toEmail),
			slog.Bool("success", success),
		)
	} else {
		l.Warn("notification_event",
			slog.String("event", event),
			slog.String("to", toEmail),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// PaymentEvent logs payment gateway activity.
func (l *Logger) PaymentEvent(operation, intentID string, amountCents int64, err error) {
	if err != nil {
		l.Error("payment_event",
			slog.String("operation", operation),
			slog.Int64("amount_cents", amountCents),
			slog.String("error", err.Error()),
		)
		return
	}
	l.Info("payment_event",
		slog.String("operation", operation),
		slog.String("intent_id", intentID),
		slog.Int64("amount_cents", amountCents),
	)
}

// RateLimitExceeded logs rate limit events
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
