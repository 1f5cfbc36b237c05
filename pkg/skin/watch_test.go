package skin_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/skinny/pkg/aspect"
	"github.com/go-drift/skinny/pkg/errors"
	"github.com/go-drift/skinny/pkg/skin"
)

type recordingHandler struct {
	mu     sync.Mutex
	errors []*errors.SkinnyError
}

func (h *recordingHandler) HandleError(err *errors.SkinnyError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, err)
}

func (h *recordingHandler) HandlePanic(*errors.PanicError) {}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.errors)
}

func writeSkin(t *testing.T, path string, spacing string) {
	t.Helper()
	data := "name: live\nhints:\n  - aspect: Spacing\n    metric: " + spacing + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestWatchReloads(t *testing.T) {
	handler := &recordingHandler{}
	prev := errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(prev) })

	path := filepath.Join(t.TempDir(), "live.yaml")
	writeSkin(t, path, "1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *skin.Skin, 16)
	require.NoError(t, skin.Watch(ctx, path, func(s *skin.Skin) {
		select {
		case reloaded <- s:
		default:
		}
	}))

	writeSkin(t, path, "2")
	waitForSpacing(t, reloaded, 2)

	// a broken file is reported and skipped
	require.NoError(t, os.WriteFile(path, []byte("hints: ["), 0o644))
	assert.Eventually(t, func() bool { return handler.count() > 0 }, 5*time.Second, 10*time.Millisecond)

	writeSkin(t, path, "3")
	waitForSpacing(t, reloaded, 3)
}

func waitForSpacing(t *testing.T, reloaded <-chan *skin.Skin, want float64) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-reloaded:
			// writes may arrive as several events
			if s.Hints.Metric(aspect.Spacing) == want {
				return
			}
		case <-timeout:
			t.Fatalf("no reload with spacing %g", want)
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "skin.yaml")

	err := skin.Watch(context.Background(), path, func(*skin.Skin) {})

	require.Error(t, err)
	var se *errors.SkinnyError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.KindWatch, se.Kind)
}
