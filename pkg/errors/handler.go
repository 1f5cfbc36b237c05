package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type installed struct{ h ErrorHandler }

var current atomic.Pointer[installed]

func init() {
	current.Store(&installed{h: &LogHandler{}})
}

// SetHandler installs h as the global handler and returns the one it
// replaces. A nil h installs a LogHandler on slog.Default.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&installed{h: h}).h
}

// Handler returns the global error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report hands err to the global handler. A nil err is ignored.
func Report(err *SkinnyError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Recover reports a panic of the surrounding function instead of letting it
// unwind further. It only works when deferred directly:
//
//	defer errors.Recover("skin.Watch")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack(1)})
	}
}

// CaptureStack formats the caller's stack as function and file:line pairs,
// leaving out skip frames above the caller.
func CaptureStack(skip int) string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(2+skip, pcs)]

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for len(pcs) > 0 {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
