package bitvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithAllocator adds the allocator name to the logger.
func (l *Logger) WithAllocator(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("allocator", name),
	}
}

// WithElementWidth adds the storage element width in bits.
func (l *Logger) WithElementWidth(width uint) *Logger {
	return &Logger{
		Logger: l.Logger.With("element_bits", width),
	}
}

// LogGrow logs a reallocation of the element buffer.
func (l *Logger) LogGrow(ctx context.Context, from, to int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "buffer growth failed",
			"from_elements", from,
			"to_elements", to,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "buffer reallocated",
		"from_elements", from,
		"to_elements", to,
	)
}

// LogAlign logs a realignment of live bits to head 0.
func (l *Logger) LogAlign(ctx context.Context, head uint, bits int) {
	l.DebugContext(ctx, "buffer realigned",
		"head", head,
		"bits", bits,
	)
}

// LogRelease logs the return of an allocation to its allocator.
func (l *Logger) LogRelease(ctx context.Context, elements int) {
	l.DebugContext(ctx, "buffer released",
		"elements", elements,
	)
}
