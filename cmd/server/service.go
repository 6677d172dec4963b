package main

import (
	"context"
	"fmt"
	"image"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
	"github.com/marben/mandel_view/viewport"
)

// viewportService serves the shared viewport to irpc clients. It translates
// the wire types into the manager's own.
type viewportService struct {
	m *viewport.Manager
}

var _ mandel.Viewport = viewportService{}

func (s viewportService) Redraw(ctx context.Context, o mandel.Overrides) error {
	opts, err := o.Options()
	if err != nil {
		return fmt.Errorf("redraw: %w", err)
	}
	return s.m.Redraw(ctx, opts...)
}

func (s viewportService) Zoom(ctx context.Context, percent float64) error {
	return s.m.Zoom(ctx, percent)
}

func (s viewportService) ZoomArea(ctx context.Context, area mandel.Region, pixelSpace bool) error {
	return s.m.ZoomArea(ctx, area, pixelSpace)
}

func (s viewportService) Move(ctx context.Context, amount int, vertical bool) error {
	return s.m.Move(ctx, amount, vertical)
}

func (s viewportService) Full(ctx context.Context) error {
	return s.m.Full(ctx)
}

func (s viewportService) Pause() error {
	s.m.Pause()
	return nil
}

func (s viewportService) Resume() error {
	s.m.Resume()
	return nil
}

// SetView accepts the textual view form produced by View.
func (s viewportService) SetView(ctx context.Context, view string) error {
	v, err := mandel.ParseView(view)
	if err != nil {
		return err
	}
	return s.m.SetView(ctx, v)
}

func (s viewportService) View() (string, error) {
	return s.m.View().String(), nil
}

// Landmark shows a named landmark region, keeping the rest of the view.
func (s viewportService) Landmark(ctx context.Context, name string) error {
	r, ok := mandel.Landmark(name)
	if !ok {
		return fmt.Errorf("unknown landmark %q", name)
	}
	v := s.m.View()
	v.Region = r
	return s.m.SetView(ctx, v)
}

func (s viewportService) SetOrder(ctx context.Context, order string) error {
	o, err := render.ParseOrder(order)
	if err != nil {
		return err
	}
	return s.m.SetOrder(ctx, o)
}

func (s viewportService) SetCanvasSize(ctx context.Context, width, height int) error {
	return s.m.SetCanvasSize(ctx, width, height)
}

func (s viewportService) SetWindow(width, height int) error {
	return s.m.SetWindow(width, height)
}

func (s viewportService) Wait(ctx context.Context) error {
	return s.m.Wait(ctx)
}

// GetImage returns the canvas as it is now; call Wait first for a finished one.
func (s viewportService) GetImage() (image.RGBA, error) {
	return *s.m.GetImage(), nil
}
