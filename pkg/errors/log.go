package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that writes errors to a slog.Logger.
type LogHandler struct {
	// Logger receives the records. When nil, slog.Default() is used.
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a SkinnyError at error level.
func (h *LogHandler) HandleError(err *SkinnyError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Path != "" {
		attrs = append(attrs, slog.String("path", err.Path))
	}
	attrs = append(attrs, slog.Any("err", err.Err))
	h.logger().Error("skinny error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("skinny panic", attrs...)
}

// LevelFromFlags returns the log level selected by the usual command line
// verbosity flags: vv is debug, v is info, q is error, warn otherwise.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
