package main

import (
	"context"
	"errors"
	"image"
	"log"
	"sync"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
	"github.com/marben/mandel_view/viewport"
)

// pushTimeout bounds one round of calls to a single display.
const pushTimeout = 5 * time.Second

// hub collects the canvas areas the renderer flushed and pushes them,
// together with progress, to every connected client's display.
type hub struct {
	m        sync.Mutex
	dirty    image.Rectangle
	displays map[mandel.Display]struct{}
}

func newHub() *hub {
	return &hub{displays: make(map[mandel.Display]struct{})}
}

// markDirty is the renderer's frame hook.
func (h *hub) markDirty(r image.Rectangle) {
	h.m.Lock()
	h.dirty = h.dirty.Union(r)
	h.m.Unlock()
}

func (h *hub) takeDirty() image.Rectangle {
	h.m.Lock()
	defer h.m.Unlock()
	d := h.dirty
	h.dirty = image.Rectangle{}
	return d
}

func (h *hub) add(d mandel.Display) {
	h.m.Lock()
	h.displays[d] = struct{}{}
	n := len(h.displays)
	h.m.Unlock()

	log.Printf("displays: %d", n)
}

func (h *hub) remove(d mandel.Display) {
	h.m.Lock()
	delete(h.displays, d)
	n := len(h.displays)
	h.m.Unlock()

	log.Printf("displays: %d", n)
}

// serveClient is the irpc server's connect hook. Every client provides a
// Display that receives pushes until the connection closes.
func (h *hub) serveClient(ep *irpc.Endpoint) {
	log.Printf("got connection from: %s", ep.RemoteAddr())

	display, err := mandel.NewDisplayIrpcClient(ep)
	if err != nil {
		log.Printf("err: new Display client: %v", err)
		return
	}
	h.add(display)
	<-ep.Context().Done()
	h.remove(display)
	log.Printf("connection from %s closed: %v", ep.RemoteAddr(), context.Cause(ep.Context()))
}

// push runs fn on every display concurrently and waits for all of them.
// Each display gets its calls in order.
func (h *hub) push(ctx context.Context, fn func(ctx context.Context, d mandel.Display) error) {
	h.m.Lock()
	displays := make([]mandel.Display, 0, len(h.displays))
	for d := range h.displays {
		displays = append(displays, d)
	}
	h.m.Unlock()

	var wg sync.WaitGroup
	for _, d := range displays {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(ctx, pushTimeout)
			defer cancel()
			if err := fn(ctx, d); err != nil && !errors.Is(err, irpc.ErrEndpointClosed) {
				log.Printf("push: %v", err)
			}
		}()
	}
	wg.Wait()
}

// pushLoop sends dirty tiles and progress changes every interval until ctx ends.
func (h *hub) pushLoop(ctx context.Context, m *viewport.Manager, interval func() time.Duration) {
	t := time.NewTimer(interval())
	defer t.Stop()

	lastValue, lastState := -1.0, render.ProgressIdle
	for {
		select {
		case <-t.C:
		case <-ctx.Done():
			return
		}

		var tile *image.RGBA
		if d := h.takeDirty(); !d.Empty() {
			tile = m.SubImage(d)
		}
		v, s := m.Progress().Get()
		progressed := v != lastValue || s != lastState
		lastValue, lastState = v, s

		if tile != nil || progressed {
			h.push(ctx, func(ctx context.Context, d mandel.Display) error {
				if tile != nil {
					if err := d.Tile(ctx, *tile); err != nil {
						return err
					}
				}
				if progressed {
					return d.Progress(ctx, v, s.String())
				}
				return nil
			})
		}

		t.Reset(interval())
	}
}
