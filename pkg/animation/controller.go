package animation

import (
	"fmt"
	"time"

	"github.com/go-drift/skinny/pkg/errors"
)

// Status represents the current state of a controller.
//
//	          Start()            last tick / Finish()
//	Idle ─────────────► Running ─────────────────────► Completed
//	  ▲                    │ Stop()                        │
//	  └────────────────────┴──────────── Reset() ──────────┘
type Status int

const (
	// Idle means the controller is at rest at the start of the run.
	Idle Status = iota
	// Running means frames are being delivered.
	Running
	// Completed means the run reached its end.
	Completed
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller advances a progress value from 0 to 1 over Duration.
//
// Frames are delivered by [StepTickers], which the frame loop calls once per
// frame. Every frame updates Value through Curve and calls the listeners;
// the status listeners fire when the status changes.
type Controller struct {
	// Duration is the length of a run. A run with a non-positive duration
	// completes on its first frame.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	value           float64
	status          Status
	ticker          *Ticker
	listeners       map[int]func(float64)
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller with the given duration.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:        duration,
		Curve:           LinearCurve,
		listeners:       make(map[int]func(float64)),
		statusListeners: make(map[int]func(Status)),
	}
}

// Value returns the eased progress of the current run.
func (c *Controller) Value() float64 {
	return c.value
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsRunning reports whether frames are being delivered.
func (c *Controller) IsRunning() bool {
	return c.status == Running
}

// Start begins a new run from 0. A running controller restarts.
func (c *Controller) Start() {
	c.detach()
	c.value = 0
	c.setStatus(Running)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

// Stop halts a running controller at its current value and returns it to
// Idle. Stopping an idle or completed controller does nothing.
func (c *Controller) Stop() {
	if c.status != Running {
		return
	}
	c.detach()
	c.setStatus(Idle)
}

// Finish jumps to the end of a running controller, delivering the final
// value and completing it.
func (c *Controller) Finish() {
	if c.status != Running {
		return
	}
	c.detach()
	c.value = 1
	c.notifyListeners()
	c.setStatus(Completed)
}

// Reset returns the controller to Idle at value 0 without notifying value
// listeners.
func (c *Controller) Reset() {
	c.detach()
	c.value = 0
	c.setStatus(Idle)
}

func (c *Controller) tick(elapsed time.Duration) {
	defer errors.Recover("animation.Controller.tick")

	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}
	if progress >= 1 {
		c.Finish()
		return
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.value = eased
	c.notifyListeners()
}

func (c *Controller) detach() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// AddListener adds a callback that receives every new value.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func(value float64)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener(c.value)
	}
}

// Dispose stops the controller and drops all listeners.
func (c *Controller) Dispose() {
	c.detach()
	c.status = Idle
	clear(c.listeners)
	clear(c.statusListeners)
}
