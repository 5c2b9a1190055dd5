package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type contextKey string

const (
	JSONLoggingFormat = "json"

	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	// ContextKeyRequestID carries the HTTP request correlation id, not a
	// disposal request id.
	ContextKeyRequestID contextKey = "httpRequestID"
)

type Logger struct {
	zerolog.Logger
}

func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stdout)
}

func NewWithWriter(level, format string, w io.Writer) Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	if format == JSONLoggingFormat {
		logger = zerolog.New(w)
	}

	logger = logger.Level(parseLevel(level)).With().Timestamp().Logger()

	return Logger{Logger: logger}
}

// Nop discards everything; handy when a collaborator logs but the caller
// does not care.
func Nop() Logger {
	return Logger{Logger: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelWarn, LogLevelWarning:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithContext enriches the logger with the correlation fields found in ctx.
func (l Logger) WithContext(ctx context.Context) zerolog.Logger {
	logger := l.Logger

	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		logger = logger.With().Str("http_request_id", requestID).Logger()
	}

	return logger
}

// ContextWithRequestID stores the HTTP correlation id in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}
