package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHandler struct {
	errs   []*SkinnyError
	panics []*PanicError
}

func (h *testHandler) HandleError(err *SkinnyError) { h.errs = append(h.errs, err) }
func (h *testHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func installTestHandler(t *testing.T) *testHandler {
	t.Helper()
	h := &testHandler{}
	prev := SetHandler(h)
	t.Cleanup(func() { SetHandler(prev) })
	return h
}

func TestSkinnyErrorString(t *testing.T) {
	err := &SkinnyError{Op: "skin.Load", Kind: KindParsing, Err: stderrors.New("bad value")}
	assert.Equal(t, "skin.Load parsing: bad value", err.Error())

	err.Path = "dark.yaml"
	assert.Equal(t, "skin.Load parsing: dark.yaml: bad value", err.Error())
}

func TestSkinnyErrorUnwrap(t *testing.T) {
	err := New("skin.Load", KindConfig, "missing.yaml", fs.ErrNotExist)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, err.Timestamp.IsZero())

	var target *SkinnyError
	wrapped := stderrors.Join(stderrors.New("context"), err)
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, KindConfig, target.Kind)
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("reload: %w", New("skin.Parse", KindParsing, "", stderrors.New("bad")))
	assert.Equal(t, KindParsing, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(fs.ErrNotExist))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindParsing, "parsing"},
		{KindWatch, "watch"},
		{KindAnimation, "animation"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
		{ErrorKind(-1), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", int(tt.kind))
	}
}

func TestPanicErrorString(t *testing.T) {
	assert.Equal(t, "panic: boom", (&PanicError{Value: "boom"}).Error())
	assert.Equal(t, "panic in stack.tick: boom", (&PanicError{Op: "stack.tick", Value: "boom"}).Error())
}

func TestReportStampsTimestamp(t *testing.T) {
	h := installTestHandler(t)

	Report(&SkinnyError{Op: "skin.Watch", Kind: KindWatch, Err: stderrors.New("gone")})
	Report(nil)

	require.Len(t, h.errs, 1)
	assert.Equal(t, "skin.Watch", h.errs[0].Op)
	assert.False(t, h.errs[0].Timestamp.IsZero())
}

func TestRecover(t *testing.T) {
	h := installTestHandler(t)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.Len(t, h.panics, 1)
	p := h.panics[0]
	assert.Equal(t, "test.recover", p.Op)
	assert.Equal(t, "intentional test panic", p.Value)
	assert.NotEmpty(t, p.StackTrace)
	assert.False(t, p.Timestamp.IsZero())
}

func TestSetHandlerNilRestoresLogHandler(t *testing.T) {
	prev := SetHandler(nil)
	t.Cleanup(func() { SetHandler(prev) })

	_, ok := Handler().(*LogHandler)
	assert.True(t, ok, "got %T", Handler())
}

func TestLogHandlerWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := &LogHandler{Logger: logger, Verbose: true}

	h.HandleError(New("skin.Load", KindParsing, "light.toml", stderrors.New("line 3")))
	h.HandlePanic(&PanicError{Op: "stack.tick", Value: 42, StackTrace: "frame"})
	h.HandleError(nil)

	out := buf.String()
	for _, want := range []string{"op=skin.Load", "kind=parsing", "path=light.toml", `err="line 3"`, "op=stack.tick", "value=42", "stack=frame"} {
		assert.True(t, strings.Contains(out, want), "output %q should contain %q", out, want)
	}
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}
