package render

import "sync"

// ProgressState tells whether a progress value is meaningful.
type ProgressState int

const (
	ProgressIdle          ProgressState = iota // no render, indicator hidden
	ProgressIndeterminate                      // render started, nothing finished yet
	ProgressActive                             // Value holds completed/total
)

func (s ProgressState) String() string {
	switch s {
	case ProgressIndeterminate:
		return "indeterminate"
	case ProgressActive:
		return "active"
	}
	return "idle"
}

// Progress is the fraction of the current render that is done.
// It can be polled with Get or waited on with Changed.
type Progress struct {
	mu      sync.Mutex
	state   ProgressState
	value   float64
	changed chan struct{}
}

// Begin switches to indeterminate at the start of a render.
func (p *Progress) Begin() {
	p.mu.Lock()
	p.state, p.value = ProgressIndeterminate, 0
	p.notifyLocked()
	p.mu.Unlock()
}

// Set records a completed fraction in [0,1]. Values lower than the
// current one are ignored so the fraction never goes backwards.
func (p *Progress) Set(f float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == ProgressActive && f < p.value {
		return
	}
	p.state, p.value = ProgressActive, min(max(f, 0), 1)
	p.notifyLocked()
}

// Clear hides the indicator at the end of a render.
func (p *Progress) Clear() {
	p.mu.Lock()
	p.state, p.value = ProgressIdle, 0
	p.notifyLocked()
	p.mu.Unlock()
}

// Get returns the current value and state.
func (p *Progress) Get() (float64, ProgressState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.state
}

// Changed returns a channel that is closed on the next update.
func (p *Progress) Changed() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.changed == nil {
		p.changed = make(chan struct{})
	}
	return p.changed
}

func (p *Progress) notifyLocked() {
	if p.changed != nil {
		close(p.changed)
		p.changed = nil
	}
}
