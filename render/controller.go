package render

import (
	"context"
	"sync"
	"time"
)

// quiescePoll is how often Quiesce looks at the running flag.
const quiescePoll = time.Millisecond

// Controller lets a render be paused, resumed or aborted between pixels.
//
// paused, aborted and running are independent: a paused render is still
// running. running is false both before the first render and after one ends.
// The zero value is ready to use.
type Controller struct {
	mu      sync.Mutex
	paused  bool
	aborted bool
	running bool
	wake    chan struct{} // closed on resume; nil while not paused
}

// NewController returns a Controller with no render running.
func NewController() *Controller {
	return &Controller{}
}

// Pause suspends the render at its next Check.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		c.paused = true
		c.wake = make(chan struct{})
	}
}

// Resume releases a paused render.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumeLocked()
}

func (c *Controller) resumeLocked() {
	if c.paused {
		c.paused = false
		close(c.wake)
		c.wake = nil
	}
}

// Break asks the render to stop at its next Check.
func (c *Controller) Break() {
	c.mu.Lock()
	c.aborted = true
	c.mu.Unlock()
}

// Reset clears the pause and abort flags before a fresh render.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumeLocked()
	c.aborted = false
}

// Start marks a render as running.
func (c *Controller) Start() {
	c.mu.Lock()
	c.running = true
	c.mu.Unlock()
}

// End marks the render as finished, normally or aborted.
func (c *Controller) End() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}

// Running reports whether a render is between Start and End.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Paused reports whether a pause is in effect.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Aborted reports whether Break was called since the last Reset.
func (c *Controller) Aborted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aborted
}

// Check is the render's suspension point. It blocks while paused and then
// reports whether the render must stop. A done ctx counts as an abort.
func (c *Controller) Check(ctx context.Context) bool {
	for {
		c.mu.Lock()
		if !c.paused {
			aborted := c.aborted
			c.mu.Unlock()
			return aborted || ctx.Err() != nil
		}
		wake := c.wake
		c.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return true
		}
	}
}

// Quiesce stops the render in flight, waits until it no longer runs and
// resets the flags so a new render can start.
func (c *Controller) Quiesce(ctx context.Context) error {
	c.Break()
	c.Resume()

	if c.Running() {
		t := time.NewTicker(quiescePoll)
		defer t.Stop()
		for c.Running() {
			select {
			case <-t.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	c.Reset()
	return nil
}
