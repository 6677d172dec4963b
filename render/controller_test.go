package render

import (
	"context"
	"testing"
	"time"
)

func TestControllerFlags(t *testing.T) {
	var c Controller
	if c.Running() || c.Paused() || c.Aborted() {
		t.Fatalf("zero Controller not idle")
	}
	c.Start()
	c.Pause()
	if !c.Running() || !c.Paused() {
		t.Errorf("paused render: running=%v paused=%v, want both true", c.Running(), c.Paused())
	}
	c.Break()
	if !c.Aborted() || !c.Paused() {
		t.Errorf("after Break: aborted=%v paused=%v", c.Aborted(), c.Paused())
	}
	c.Reset()
	if c.Aborted() || c.Paused() {
		t.Errorf("after Reset: aborted=%v paused=%v", c.Aborted(), c.Paused())
	}
	c.End()
	if c.Running() {
		t.Errorf("after End: running")
	}
}

func TestNewControllerIdle(t *testing.T) {
	c := NewController()
	if c.Running() || c.Paused() || c.Aborted() {
		t.Errorf("NewController: running=%v paused=%v aborted=%v, want all false", c.Running(), c.Paused(), c.Aborted())
	}
}

func TestControllerCheckBlocksWhilePaused(t *testing.T) {
	c := NewController()
	c.Pause()

	result := make(chan bool)
	go func() { result <- c.Check(context.Background()) }()

	select {
	case <-result:
		t.Fatalf("Check returned while paused")
	case <-time.After(20 * time.Millisecond):
	}

	c.Resume()
	select {
	case aborted := <-result:
		if aborted {
			t.Errorf("Check() = true after plain resume")
		}
	case <-time.After(time.Second):
		t.Fatalf("Check did not return after Resume")
	}
}

func TestControllerCheckContext(t *testing.T) {
	c := NewController()
	c.Pause()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if !c.Check(ctx) {
		t.Errorf("Check with cancelled context = false, want true")
	}
}

func TestControllerQuiesce(t *testing.T) {
	c := NewController()
	c.Start()
	c.Pause()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		defer c.End()
		for !c.Check(context.Background()) {
			time.Sleep(time.Millisecond)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Quiesce(ctx); err != nil {
		t.Fatalf("Quiesce: %v", err)
	}
	<-stopped
	if c.Running() || c.Paused() || c.Aborted() {
		t.Errorf("after Quiesce: running=%v paused=%v aborted=%v", c.Running(), c.Paused(), c.Aborted())
	}

	c.Start()
	if !c.Running() {
		t.Errorf("Start after Quiesce not effective")
	}
	if c.Check(context.Background()) {
		t.Errorf("fresh render reports abort")
	}
}

func TestControllerQuiesceTimeout(t *testing.T) {
	c := NewController()
	c.Start() // never ends
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := c.Quiesce(ctx); err == nil {
		t.Errorf("Quiesce on a render that never ends returned nil")
	}
}

func TestProgress(t *testing.T) {
	var p Progress
	if _, s := p.Get(); s != ProgressIdle {
		t.Fatalf("initial state = %v", s)
	}
	ch := p.Changed()
	p.Begin()
	select {
	case <-ch:
	default:
		t.Errorf("Changed not closed by Begin")
	}
	if v, s := p.Get(); s != ProgressIndeterminate || v != 0 {
		t.Errorf("after Begin: %v %v", v, s)
	}
	p.Set(0.5)
	p.Set(0.25)
	if v, s := p.Get(); s != ProgressActive || v != 0.5 {
		t.Errorf("after Set(0.5), Set(0.25): %v %v, want 0.5 active", v, s)
	}
	p.Clear()
	if v, s := p.Get(); s != ProgressIdle || v != 0 {
		t.Errorf("after Clear: %v %v", v, s)
	}
}
