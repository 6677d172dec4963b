package main

import (
	"image"
	"testing"
	"time"

	mandel "github.com/marben/mandel_view"
)

func TestHubDirtyUnion(t *testing.T) {
	h := newHub()
	h.markDirty(image.Rect(0, 0, 4, 1))
	h.markDirty(image.Rect(0, 3, 2, 4))
	if got, want := h.takeDirty(), image.Rect(0, 0, 4, 4); got != want {
		t.Fatalf("dirty = %v, want %v", got, want)
	}
	if got := h.takeDirty(); !got.Empty() {
		t.Fatalf("dirty after take = %v", got)
	}
}

func TestHubPushesTilesAndProgress(t *testing.T) {
	h := newHub()
	m := newTestManager(t, h.markDirty)
	display := &recordingDisplay{}
	client := startTestServer(t, m, h, display)
	ctx := testContext(t)

	// the display is registered once the connect hook ran
	for deadline := time.Now().Add(5 * time.Second); ; {
		h.m.Lock()
		n := len(h.displays)
		h.m.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("displays = %d, want 1", n)
		}
		time.Sleep(time.Millisecond)
	}

	go h.pushLoop(ctx, m, func() time.Duration { return 2 * time.Millisecond })

	if err := client.Redraw(ctx, mandel.Overrides{}); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if err := client.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	full := image.Rectangle{Max: m.Size()}
	for deadline := time.Now().Add(5 * time.Second); ; {
		covered, states := display.snapshot()
		if covered == full && len(states) > 0 && states[len(states)-1] == "idle" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("pushed tiles cover %v of %v, states %v", covered, full, states)
		}
		time.Sleep(time.Millisecond)
	}
}
