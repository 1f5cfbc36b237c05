// Package animation drives time based transitions.
//
// A [Controller] produces a progress value from 0 to 1 over a duration,
// eased by a curve. Controllers are advanced by the frame loop, which calls
// [StepTickers] once per frame:
//
//	c := animation.NewController(250 * time.Millisecond)
//	c.Curve = animation.EaseInOut
//	c.AddListener(func(v float64) { item.SetOpacity(v) })
//	c.Start()
//
//	// in the frame loop
//	animation.StepTickers()
//
// Time comes from a replaceable [Clock] so tests can step animations
// deterministically.
package animation

import (
	"slices"
	"sync"
	"time"
)

// tickers holds the running tickers in start order, so frames are
// delivered deterministically.
var (
	tickerMu sync.Mutex
	tickers  []*Ticker
)

// Ticker calls a callback on each frame while running. The callback gets
// the time elapsed since Start.
type Ticker struct {
	callback func(elapsed time.Duration)
	running  bool
	started  time.Time
}

func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start registers the ticker for the next frame. Starting a running
// ticker keeps its first start time.
func (t *Ticker) Start() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.started = Now()
	tickers = append(tickers, t)
}

func (t *Ticker) Stop() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	if i := slices.Index(tickers, t); i >= 0 {
		tickers = slices.Delete(tickers, i, i+1)
	}
}

// IsActive reports whether the ticker receives frames.
func (t *Ticker) IsActive() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return t.running
}

// StepTickers delivers one frame to the running tickers, oldest first.
// Callbacks run without the registry lock held; a ticker stopped by an
// earlier callback of the same frame is skipped.
func StepTickers() {
	tickerMu.Lock()
	frame := slices.Clone(tickers)
	tickerMu.Unlock()
	if len(frame) == 0 {
		return
	}

	now := Now()
	for _, t := range frame {
		if t.IsActive() && t.callback != nil {
			t.callback(now.Sub(t.started))
		}
	}
}

// HasActiveTickers reports whether another frame is needed.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(tickers) > 0
}
