package stack

import (
	"fmt"

	"github.com/go-drift/skinny/pkg/animation"
	"github.com/go-drift/skinny/pkg/layout"
)

// Translatable is implemented by items that can be drawn with an offset.
type Translatable interface {
	SetTranslation(dx, dy float64)
}

// Fadable is implemented by items that can be drawn translucent.
type Fadable interface {
	SetOpacity(opacity float64)
}

// SlideEffect moves the outgoing item out of the box while the incoming
// item moves in from the opposite side. Moving to a higher index slides
// towards the start of the axis.
type SlideEffect struct {
	Orientation layout.Orientation
}

// Apply implements Effect.
func (e SlideEffect) Apply(t Transition) {
	extent := t.Extent.Width
	if e.Orientation == layout.Vertical {
		extent = t.Extent.Height
	}
	extent = max(extent, 0)

	sign := 1.0
	if t.Forward {
		sign = -1
	}
	out := animation.LerpFloat64(0, sign*extent, t.Progress)
	in := animation.LerpFloat64(-sign*extent, 0, t.Progress)

	e.translate(t.From, out)
	if t.To != t.From {
		e.translate(t.To, in)
	}
}

// Reset implements Effect.
func (e SlideEffect) Reset(t Transition) {
	e.translate(t.From, 0)
	e.translate(t.To, 0)
}

func (e SlideEffect) translate(item layout.Item, offset float64) {
	tr, ok := item.(Translatable)
	if !ok {
		return
	}
	if e.Orientation == layout.Vertical {
		tr.SetTranslation(0, offset)
	} else {
		tr.SetTranslation(offset, 0)
	}
}

func (e SlideEffect) String() string {
	return fmt.Sprintf("slide(%s)", e.Orientation)
}

// FadeEffect cross-fades the outgoing and incoming items.
type FadeEffect struct{}

// Apply implements Effect.
func (FadeEffect) Apply(t Transition) {
	if t.From == t.To {
		return
	}
	setOpacity(t.From, 1-t.Progress)
	setOpacity(t.To, t.Progress)
}

// Reset implements Effect.
func (FadeEffect) Reset(t Transition) {
	setOpacity(t.From, 1)
	setOpacity(t.To, 1)
}

func (FadeEffect) String() string { return "fade" }

func setOpacity(item layout.Item, opacity float64) {
	if f, ok := item.(Fadable); ok {
		f.SetOpacity(opacity)
	}
}

// EffectByName returns the effect for one of "slide", "slide-horizontal",
// "slide-vertical", "fade" or "none". "none" and the empty name return a nil
// effect.
func EffectByName(name string) (Effect, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "slide", "slide-horizontal":
		return SlideEffect{Orientation: layout.Horizontal}, nil
	case "slide-vertical":
		return SlideEffect{Orientation: layout.Vertical}, nil
	case "fade":
		return FadeEffect{}, nil
	default:
		return nil, fmt.Errorf("unknown transition effect %q", name)
	}
}
