package main

import (
	"context"
	"fmt"
	"image"
	"log"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
	"github.com/marben/mandel_view/viewport"
)

// renderLocal renders v in-process on a canvas fitted to window.
func renderLocal(ctx context.Context, v mandel.View, window image.Point, order render.Order, zoom float64) (image.Image, error) {
	m, err := viewport.New(v, window, viewport.Config{Order: order})
	if err != nil {
		return nil, fmt.Errorf("viewport.New: %w", err)
	}
	defer m.Close(context.Background())

	done := make(chan struct{})
	defer close(done)
	go logProgress(m.Progress(), done)

	if zoom != 1 {
		err = m.Zoom(ctx, zoom)
	} else {
		err = m.Redraw(ctx)
	}
	if err != nil {
		return nil, err
	}
	if err := m.Wait(ctx); err != nil {
		return nil, fmt.Errorf("render of %s: %w", m.View(), err)
	}
	return m.GetImage(), nil
}

// logProgress logs every tenth of the render until done is closed.
func logProgress(p *render.Progress, done <-chan struct{}) {
	last := -1
	for {
		ch := p.Changed()
		if v, s := p.Get(); s == render.ProgressActive && int(v*10) > last {
			last = int(v * 10)
			log.Printf("Rendering: %3d%%", last*10)
		}
		select {
		case <-ch:
		case <-done:
			return
		}
	}
}
