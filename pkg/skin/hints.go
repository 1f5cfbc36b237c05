package skin

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
	"time"

	"github.com/go-drift/skinny/pkg/aspect"
)

// HintKind identifies the value stored in a [Hint].
type HintKind int

const (
	// MetricHint is a length or other real number.
	MetricHint HintKind = iota
	// FlagHint is an enumeration or bit set.
	FlagHint
	// ColorHint is a color.
	ColorHint
	// AnimationHint describes a transition.
	AnimationHint
)

// String returns a human-readable representation of the hint kind.
func (k HintKind) String() string {
	switch k {
	case MetricHint:
		return "metric"
	case FlagHint:
		return "flag"
	case ColorHint:
		return "color"
	case AnimationHint:
		return "animation"
	default:
		return fmt.Sprintf("HintKind(%d)", int(k))
	}
}

// Animation describes a transition: how long it takes, how progress is
// eased and how the items are drawn while it runs.
type Animation struct {
	Duration time.Duration
	// Curve is a curve name understood by animation.CurveByName.
	Curve string
	// Effect is an effect name understood by stack.EffectByName.
	Effect string
}

// Hint is a value stored under an aspect.
type Hint struct {
	Kind      HintKind
	Metric    float64
	Flag      int
	Color     color.NRGBA
	Animation Animation
}

func (h Hint) String() string {
	switch h.Kind {
	case MetricHint:
		return fmt.Sprintf("%g", h.Metric)
	case FlagHint:
		return fmt.Sprintf("%d", h.Flag)
	case ColorHint:
		return formatColor(h.Color)
	case AnimationHint:
		s := h.Animation.Duration.String()
		if h.Animation.Curve != "" {
			s += " " + h.Animation.Curve
		}
		if h.Animation.Effect != "" {
			s += " " + h.Animation.Effect
		}
		return s
	default:
		return "?"
	}
}

// Hints maps aspects to values.
//
// Setters store metrics, flags and colors under the aspect with its type
// replaced by the matching value type, and animations under the aspect with
// the Animator bit set. Lookups fall back from specific to general keys,
// see [Hints.Resolve].
type Hints struct {
	table map[aspect.Aspect]Hint
}

// NewHints returns an empty table.
func NewHints() *Hints {
	return &Hints{table: make(map[aspect.Aspect]Hint)}
}

// Len returns the number of stored hints.
func (h *Hints) Len() int { return len(h.table) }

// Set stores hint under a unchanged.
func (h *Hints) Set(a aspect.Aspect, hint Hint) {
	h.table[a] = hint
}

// Get returns the hint stored under exactly a.
func (h *Hints) Get(a aspect.Aspect) (Hint, bool) {
	hint, ok := h.table[a]
	return hint, ok
}

// Remove deletes the hint stored under exactly a.
func (h *Hints) Remove(a aspect.Aspect) {
	delete(h.table, a)
}

// SetMetric stores a metric hint.
func (h *Hints) SetMetric(a aspect.Aspect, v float64) {
	h.Set(a.WithType(aspect.Metric), Hint{Kind: MetricHint, Metric: v})
}

// SetFlag stores a flag hint.
func (h *Hints) SetFlag(a aspect.Aspect, v int) {
	h.Set(a.WithType(aspect.Flag), Hint{Kind: FlagHint, Flag: v})
}

// SetColor stores a color hint.
func (h *Hints) SetColor(a aspect.Aspect, c color.Color) {
	h.Set(a.WithType(aspect.Color), Hint{Kind: ColorHint, Color: color.NRGBAModel.Convert(c).(color.NRGBA)})
}

// SetAnimation stores an animation hint.
func (h *Hints) SetAnimation(a aspect.Aspect, anim Animation) {
	h.Set(a|aspect.Animator, Hint{Kind: AnimationHint, Animation: anim})
}

// Metric resolves a metric hint, returning 0 when none applies.
func (h *Hints) Metric(a aspect.Aspect) float64 {
	hint, _, ok := h.resolveKind(a.WithType(aspect.Metric), MetricHint)
	if !ok {
		return 0
	}
	return hint.Metric
}

// Flag resolves a flag hint, returning 0 when none applies.
func (h *Hints) Flag(a aspect.Aspect) int {
	hint, _, ok := h.resolveKind(a.WithType(aspect.Flag), FlagHint)
	if !ok {
		return 0
	}
	return hint.Flag
}

// Color resolves a color hint, returning transparent when none applies.
func (h *Hints) Color(a aspect.Aspect) color.NRGBA {
	hint, _, ok := h.resolveKind(a.WithType(aspect.Color), ColorHint)
	if !ok {
		return color.NRGBA{}
	}
	return hint.Color
}

// Animation resolves an animation hint.
func (h *Hints) Animation(a aspect.Aspect) (Animation, bool) {
	hint, _, ok := h.resolveKind(a|aspect.Animator, AnimationHint)
	return hint.Animation, ok
}

func (h *Hints) resolveKind(a aspect.Aspect, kind HintKind) (Hint, aspect.Aspect, bool) {
	hint, key, ok := h.Resolve(a)
	if !ok || hint.Kind != kind {
		return Hint{}, 0, false
	}
	return hint, key, true
}

// Resolve looks up a and falls back to more general keys, in order:
//
//  1. a itself
//  2. a without its states
//  3. that key without edges or corners
//  4. that key on the control instead of the subcontrol
//
// A key with NoState is never reduced to a stateless one, so hints stored
// for NoState only match lookups for NoState. Resolve returns the hint and
// the key it was found under.
func (h *Hints) Resolve(a aspect.Aspect) (Hint, aspect.Aspect, bool) {
	for _, key := range Fallbacks(a) {
		if hint, ok := h.table[key]; ok {
			return hint, key, true
		}
	}
	return Hint{}, 0, false
}

// Fallbacks returns the keys Resolve tries for a, without duplicates.
func Fallbacks(a aspect.Aspect) []aspect.Aspect {
	keys := make([]aspect.Aspect, 0, 4)
	add := func(k aspect.Aspect) {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}

	add(a)
	k := a
	if s := a.State(); s != aspect.Automatic && s != aspect.NoState {
		k = k.WithoutState()
		add(k)
	}
	k = k.WithEdges(aspect.AllEdges)
	add(k)
	add(k.WithSubcontrol(aspect.Control))
	return keys
}

// Keys returns the stored aspects in ascending order.
func (h *Hints) Keys() []aspect.Aspect {
	return slices.Sorted(maps.Keys(h.table))
}

// Merge copies every hint of other into h, replacing existing ones.
func (h *Hints) Merge(other *Hints) {
	maps.Copy(h.table, other.table)
}
