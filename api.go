package mandel

import (
	"context"
	"image"
)

// Viewport and Display are served over irpc; api_irpc.go is regenerated
// with "irpc api.go" whenever they change.

// Viewport is the remote control surface of a render server. Calls that
// change the view stop the render in flight, start a new one and return
// without waiting for it. Wait blocks until the canvas is complete.
type Viewport interface {
	Redraw(ctx context.Context, o Overrides) error
	Zoom(ctx context.Context, percent float64) error
	ZoomArea(ctx context.Context, area Region, pixelSpace bool) error
	Move(ctx context.Context, amount int, vertical bool) error
	Full(ctx context.Context) error
	Pause() error
	Resume() error
	SetView(ctx context.Context, view string) error
	View() (string, error)
	Landmark(ctx context.Context, name string) error
	SetOrder(ctx context.Context, order string) error
	SetCanvasSize(ctx context.Context, width, height int) error
	SetWindow(width, height int) error
	Wait(ctx context.Context) error
	GetImage() (image.RGBA, error)
}

// Display is provided by every client connected to a render server. The
// server pushes progress and the freshly painted parts of the canvas to it.
type Display interface {
	Progress(ctx context.Context, value float64, state string) error
	Tile(ctx context.Context, tile image.RGBA) error
}

// Overrides changes parts of the view for a single redraw.
// Zero fields keep the current value.
type Overrides struct {
	Algorithm  string // name or index
	Limit      int
	Color      string // "hue" or "#rrggbb"
	ColorRange bool   // use ColorMin and ColorMax
	ColorMin   float64
	ColorMax   float64
}
