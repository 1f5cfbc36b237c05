package stack

import (
	"time"

	"github.com/go-drift/skinny/pkg/animation"
	"github.com/go-drift/skinny/pkg/aspect"
	"github.com/go-drift/skinny/pkg/layout"
)

// Window is the display surface a box is shown on.
type Window interface {
	// Update schedules a new frame.
	Update()
}

// Animator performs the transition between two items of a box.
//
// A box owns its animator exclusively: it stops the animator before every
// reconfiguration and disposes it when replaced or when the box goes away.
// Once started, the animator is responsible for leaving exactly the end
// item visible.
type Animator interface {
	Start()
	// Stop completes a running transition immediately.
	Stop()
	SetStartIndex(index int)
	SetEndIndex(index int)
	SetWindow(w Window)
	Dispose()
}

// Container is the view of a box an animator works on.
type Container interface {
	ItemAt(index int) layout.Item
	Extent() layout.Size
}

// ContainerAware is implemented by animators that need the items of the box
// they are installed on.
type ContainerAware interface {
	SetContainer(c Container)
}

// AnimatorProvider supplies a default animator when none is set explicitly,
// typically from a skin.
type AnimatorProvider interface {
	// StackAnimator returns an animator for the hint key, or nil.
	StackAnimator(hint aspect.Aspect) Animator
}

// Panel is the subcontrol of stack boxes in skins.
var Panel = aspect.RegisterSubcontrol("StackBox.Panel")

// TransitionHint is the key under which skins provide the default
// transition of stack boxes.
var TransitionHint = Panel | aspect.Animator

// Transition is the state of a running transition passed to an [Effect].
type Transition struct {
	From, To layout.Item
	// Progress is the eased progress in [0, 1].
	Progress float64
	// Forward is true when the end index is greater than the start index.
	Forward bool
	// Extent is the size of the box.
	Extent layout.Size
}

// Effect renders a transition frame.
type Effect interface {
	Apply(t Transition)
	// Reset restores the items once the transition is over.
	Reset(t Transition)
}

// TransitionAnimator is an [Animator] driven by an [animation.Controller].
// Both items are visible while it runs; the effect decides how they are
// drawn on each frame.
type TransitionAnimator struct {
	controller *animation.Controller
	effect     Effect
	container  Container
	window     Window
	startIndex int
	endIndex   int
	transition Transition
	unlisten   []func()
}

// NewTransitionAnimator creates an animator running effect over duration.
// A nil effect switches the items at the end without intermediate frames.
func NewTransitionAnimator(duration time.Duration, curve func(float64) float64, effect Effect) *TransitionAnimator {
	c := animation.NewController(duration)
	if curve != nil {
		c.Curve = curve
	}
	a := &TransitionAnimator{
		controller: c,
		effect:     effect,
		startIndex: -1,
		endIndex:   -1,
	}
	a.unlisten = append(a.unlisten,
		c.AddListener(a.frame),
		c.AddStatusListener(func(s animation.Status) {
			if s == animation.Completed {
				a.finish()
			}
		}),
	)
	return a
}

// SetContainer implements ContainerAware.
func (a *TransitionAnimator) SetContainer(c Container) { a.container = c }

// SetStartIndex sets the index of the outgoing item.
func (a *TransitionAnimator) SetStartIndex(index int) { a.startIndex = index }

// SetEndIndex sets the index of the incoming item.
func (a *TransitionAnimator) SetEndIndex(index int) { a.endIndex = index }

// StartIndex returns the index of the outgoing item.
func (a *TransitionAnimator) StartIndex() int { return a.startIndex }

// EndIndex returns the index of the incoming item.
func (a *TransitionAnimator) EndIndex() int { return a.endIndex }

// SetWindow sets the window that receives frame updates.
func (a *TransitionAnimator) SetWindow(w Window) { a.window = w }

// Duration returns the length of a transition.
func (a *TransitionAnimator) Duration() time.Duration { return a.controller.Duration }

// IsRunning reports whether a transition is in flight.
func (a *TransitionAnimator) IsRunning() bool { return a.controller.IsRunning() }

// Start begins the transition. Without a container there is nothing to
// animate and Start does nothing.
func (a *TransitionAnimator) Start() {
	if a.container == nil {
		return
	}
	a.transition = Transition{
		From:    a.container.ItemAt(a.startIndex),
		To:      a.container.ItemAt(a.endIndex),
		Forward: a.endIndex > a.startIndex,
		Extent:  a.container.Extent(),
	}
	if a.transition.From != nil {
		a.transition.From.SetVisible(true)
	}
	if a.transition.To != nil {
		a.transition.To.SetVisible(true)
	}
	a.frame(0)
	a.controller.Start()
}

// Stop completes a running transition immediately.
func (a *TransitionAnimator) Stop() {
	a.controller.Finish()
}

// Dispose stops the animator and releases its controller.
func (a *TransitionAnimator) Dispose() {
	a.Stop()
	for _, fn := range a.unlisten {
		fn()
	}
	a.unlisten = nil
	a.controller.Dispose()
	a.container = nil
	a.window = nil
}

func (a *TransitionAnimator) frame(progress float64) {
	if a.effect != nil {
		a.transition.Progress = progress
		a.effect.Apply(a.transition)
	}
	if a.window != nil {
		a.window.Update()
	}
}

func (a *TransitionAnimator) finish() {
	t := a.transition
	t.Progress = 1
	if a.effect != nil {
		a.effect.Reset(t)
	}
	if t.From != nil && t.From != t.To {
		t.From.SetVisible(false)
	}
	if t.To != nil {
		t.To.SetVisible(true)
	}
	a.transition = Transition{}
	if a.window != nil {
		a.window.Update()
	}
}
