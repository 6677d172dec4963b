package mandel

import (
	"context"
	"fmt"
)

// Navigator is the render trigger surface. Every call first stops any render
// in flight, then starts a new one and returns without waiting for it.
type Navigator interface {
	Redraw(ctx context.Context, opts ...ViewOption) error
	Zoom(ctx context.Context, percent float64) error
	ZoomArea(ctx context.Context, area Region, pixelSpace bool) error
	Move(ctx context.Context, amount int, vertical bool) error
	Full(ctx context.Context) error
}

// ViewOption overrides part of a view for a single render.
type ViewOption func(*View)

// WithLimit overrides the iteration limit.
func WithLimit(limit int) ViewOption {
	return func(v *View) { v.Limit = limit }
}

// WithColor overrides the colour mode.
func WithColor(c ColorMode) ViewOption {
	return func(v *View) { v.Color = c }
}

// WithColorRange overrides the colour range.
func WithColorRange(lo, hi float64) ViewOption {
	return func(v *View) { v.ColorMin, v.ColorMax = lo, hi }
}

// WithAlgorithm overrides the escape-time variant.
func WithAlgorithm(a Algorithm) ViewOption {
	return func(v *View) { v.Algorithm = a }
}

// Apply returns a copy of v with opts applied.
func (v View) Apply(opts ...ViewOption) View {
	for _, o := range opts {
		o(&v)
	}
	return v
}

// Options turns o into view options.
func (o Overrides) Options() ([]ViewOption, error) {
	var opts []ViewOption
	if o.Algorithm != "" {
		a, err := ParseAlgorithm(o.Algorithm)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAlgorithm(a))
	}
	if o.Limit != 0 {
		if o.Limit < 1 {
			return nil, fmt.Errorf("limit %d: must be at least 1", o.Limit)
		}
		opts = append(opts, WithLimit(o.Limit))
	}
	if o.Color != "" {
		mode, err := ParseColorMode(o.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithColor(mode))
	}
	if o.ColorRange {
		opts = append(opts, WithColorRange(o.ColorMin, o.ColorMax))
	}
	return opts, nil
}
