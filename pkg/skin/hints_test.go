package skin_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/go-drift/skinny/pkg/aspect"
	"github.com/go-drift/skinny/pkg/skin"
)

var (
	buttonPanel = aspect.RegisterSubcontrol("Button.Panel")
	buttonText  = aspect.RegisterSubcontrol("Button.Text")
)

func TestFallbacks(t *testing.T) {
	a := buttonPanel | aspect.Padding | aspect.Left | aspect.Metric | aspect.Hovered

	want := []aspect.Aspect{
		a,
		buttonPanel | aspect.Padding | aspect.Left | aspect.Metric,
		buttonPanel | aspect.Padding | aspect.Metric,
		aspect.Padding | aspect.Metric,
	}
	if diff := cmp.Diff(want, skin.Fallbacks(a)); diff != "" {
		t.Errorf("Fallbacks() mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbacksSkipDuplicates(t *testing.T) {
	want := []aspect.Aspect{aspect.TextColor}
	if diff := cmp.Diff(want, skin.Fallbacks(aspect.TextColor)); diff != "" {
		t.Errorf("Fallbacks() mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbacksKeepNoState(t *testing.T) {
	a := buttonPanel | aspect.Margin | aspect.Top | aspect.Metric | aspect.NoState

	for _, key := range skin.Fallbacks(a) {
		assert.Equal(t, aspect.NoState, key.State(), "fallback %v", key)
	}
}

func TestResolveOrder(t *testing.T) {
	h := skin.NewHints()
	h.SetMetric(aspect.Padding, 1)
	h.SetMetric(buttonPanel|aspect.Padding, 2)
	h.SetMetric(buttonPanel|aspect.Padding|aspect.Left, 3)
	h.SetMetric(buttonPanel|aspect.Padding|aspect.Left|aspect.Pressed, 4)

	tests := []struct {
		name string
		a    aspect.Aspect
		want float64
	}{
		{"exact", buttonPanel | aspect.Padding | aspect.Left | aspect.Pressed, 4},
		{"state stripped", buttonPanel | aspect.Padding | aspect.Left | aspect.Hovered, 3},
		{"edges cleared", buttonPanel | aspect.Padding | aspect.Top | aspect.Pressed, 2},
		{"control", buttonText | aspect.Padding | aspect.Bottom, 1},
		{"missing", buttonPanel | aspect.Margin, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Metric(tt.a))
		})
	}
}

func TestResolveReportsKey(t *testing.T) {
	h := skin.NewHints()
	h.SetMetric(buttonPanel|aspect.Margin, 6)

	hint, key, ok := h.Resolve(buttonPanel | aspect.Margin | aspect.Right | aspect.Metric | aspect.Focused)

	assert.True(t, ok)
	assert.Equal(t, buttonPanel|aspect.Margin|aspect.Metric, key)
	assert.Equal(t, skin.Hint{Kind: skin.MetricHint, Metric: 6}, hint)
}

func TestNoStateNeverMatchesAutomatic(t *testing.T) {
	h := skin.NewHints()
	h.SetMetric(aspect.Spacing, 10)
	h.SetMetric(aspect.Spacing|aspect.NoState, 20)

	assert.Equal(t, 10.0, h.Metric(aspect.Spacing))
	assert.Equal(t, 10.0, h.Metric(aspect.Spacing|aspect.Disabled))
	assert.Equal(t, 20.0, h.Metric(aspect.Spacing|aspect.NoState))

	h.Remove(aspect.Spacing | aspect.Metric | aspect.NoState)
	assert.Equal(t, 0.0, h.Metric(aspect.Spacing|aspect.NoState))
}

func TestTypedGetters(t *testing.T) {
	h := skin.NewHints()
	h.SetFlag(aspect.Alignment, 3)
	h.SetColor(aspect.TextColor, color.RGBA{R: 255, A: 255})
	h.SetAnimation(buttonPanel, skin.Animation{Duration: time.Second, Curve: "ease"})

	assert.Equal(t, 3, h.Flag(aspect.Alignment))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, h.Color(aspect.TextColor|aspect.Hovered))
	assert.Equal(t, color.NRGBA{}, h.Color(aspect.LinkColor))

	anim, ok := h.Animation(buttonPanel | aspect.Pressed)
	assert.True(t, ok)
	assert.Equal(t, time.Second, anim.Duration)

	_, ok = h.Animation(buttonText)
	assert.False(t, ok)
}

func TestGetterIgnoresOtherKinds(t *testing.T) {
	h := skin.NewHints()
	h.Set(aspect.Margin|aspect.Metric, skin.Hint{Kind: skin.FlagHint, Flag: 7})

	assert.Equal(t, 0.0, h.Metric(aspect.Margin))
}

func TestKeysSorted(t *testing.T) {
	h := skin.NewHints()
	h.SetMetric(buttonPanel|aspect.Margin, 1)
	h.SetMetric(aspect.Margin, 1)
	h.SetColor(aspect.TextColor, color.Black)

	keys := h.Keys()
	assert.Len(t, keys, 3)
	assert.IsIncreasing(t, keys)
}

func TestMerge(t *testing.T) {
	base := skin.NewHints()
	base.SetMetric(aspect.Margin, 1)
	base.SetMetric(aspect.Padding, 2)

	override := skin.NewHints()
	override.SetMetric(aspect.Padding, 5)

	base.Merge(override)

	assert.Equal(t, 2, base.Len())
	assert.Equal(t, 1.0, base.Metric(aspect.Margin))
	assert.Equal(t, 5.0, base.Metric(aspect.Padding))
}

func TestHintString(t *testing.T) {
	tests := []struct {
		hint skin.Hint
		want string
	}{
		{skin.Hint{Kind: skin.MetricHint, Metric: 4.5}, "4.5"},
		{skin.Hint{Kind: skin.FlagHint, Flag: 3}, "3"},
		{skin.Hint{Kind: skin.ColorHint, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}, "white"},
		{skin.Hint{Kind: skin.AnimationHint, Animation: skin.Animation{Duration: 250 * time.Millisecond, Curve: "ease", Effect: "fade"}}, "250ms ease fade"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.hint.String())
	}
}
