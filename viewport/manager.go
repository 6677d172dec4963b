// Package viewport owns the visible window of the complex plane and
// coordinates renders of it: one render at a time, every operation first
// stopping the one in flight.
package viewport

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
)

var (
	// ErrInvalidZoom is returned by Zoom for a zoom factor of 0.
	ErrInvalidZoom = errors.New("zoom factor must not be 0")
	// ErrInvalidSize is returned for canvas or window sizes below one pixel.
	ErrInvalidSize = errors.New("size must be at least 1x1")
)

const (
	DefaultMoveDebounce   = 300 * time.Millisecond
	DefaultResizeDebounce = 500 * time.Millisecond
)

// Config holds the render settings of a Manager.
type Config struct {
	Order          render.Order
	Batch          int           // pixels between flushes, 0 for render.DefaultBatch
	MoveDebounce   time.Duration // delay before the full redraw that follows a move
	ResizeDebounce time.Duration // delay before a window resize takes effect

	// Frame is called after every flush with the area of the canvas that
	// changed. It runs on the render goroutine.
	Frame func(dirty image.Rectangle)

	// Rand shuffles the pixel permutation; nil uses the global source.
	Rand *rand.Rand
}

// Manager is the viewport and render-session coordinator.
type Manager struct {
	opMu sync.Mutex // serializes operations

	mu             sync.Mutex
	view           mandel.View
	window         image.Point
	zoom           float64 // display scale of the canvas inside the window
	panX, panY     float64 // display offset of the canvas centre from the window centre
	order          render.Order
	batch          int
	moveDebounce   time.Duration
	resizeDebounce time.Duration
	perm           render.Permutation
	rng            *rand.Rand
	gen            uint64 // bumped whenever a pending move redraw must be dropped
	resizeGen      uint64 // bumped by every window change and by Close
	movePending    bool
	resizePending  bool
	moveTimer      *time.Timer
	resizeTimer    *time.Timer

	canvas   *render.Canvas
	ctrl     *render.Controller
	progress *render.Progress
	renderer *render.Renderer

	ctx    context.Context // lifetime of all renders
	cancel context.CancelFunc
}

var _ mandel.Navigator = (*Manager)(nil)

// New creates a Manager showing v in a window of the given size. The
// canvas is sized to fit the window with the view's aspect ratio.
// No render is started.
func New(v mandel.View, window image.Point, cfg Config) (*Manager, error) {
	if window.X < 1 || window.Y < 1 {
		return nil, fmt.Errorf("window %v: %w", window, ErrInvalidSize)
	}
	if cfg.MoveDebounce <= 0 {
		cfg.MoveDebounce = DefaultMoveDebounce
	}
	if cfg.ResizeDebounce <= 0 {
		cfg.ResizeDebounce = DefaultResizeDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		view:           v,
		window:         window,
		zoom:           1,
		order:          cfg.Order,
		batch:          cfg.Batch,
		moveDebounce:   cfg.MoveDebounce,
		resizeDebounce: cfg.ResizeDebounce,
		rng:            cfg.Rand,
		canvas:         render.NewCanvas(1, 1),
		ctrl:           render.NewController(),
		progress:       &render.Progress{},
		ctx:            ctx,
		cancel:         cancel,
	}
	m.renderer = &render.Renderer{
		Canvas:     m.canvas,
		Controller: m.ctrl,
		Progress:   m.progress,
		Frame:      cfg.Frame,
	}
	m.perm = render.NewPermutation(1, m.rng)
	m.fitCanvasLocked()
	return m, nil
}

// View returns the current view.
func (m *Manager) View() mandel.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// Size returns the canvas size in pixels.
func (m *Manager) Size() image.Point {
	return m.canvas.Size()
}

// Window returns the window size in pixels.
func (m *Manager) Window() image.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.window
}

// Order returns the active render order.
func (m *Manager) Order() render.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order
}

// Progress exposes the progress of the current render.
func (m *Manager) Progress() *render.Progress {
	return m.progress
}

// Controller exposes the render state flags.
func (m *Manager) Controller() *render.Controller {
	return m.ctrl
}

// GetImage returns a copy of the canvas. The copy may be incomplete while a
// render is in flight or after one was aborted.
func (m *Manager) GetImage() *image.RGBA {
	return m.canvas.GetImage()
}

// SubImage returns a copy of part of the canvas.
func (m *Manager) SubImage(r image.Rectangle) *image.RGBA {
	return m.canvas.SubImage(r)
}

// Pause suspends the render in flight.
func (m *Manager) Pause() { m.ctrl.Pause() }

// Resume continues a paused render.
func (m *Manager) Resume() { m.ctrl.Resume() }

// SetDisplay records how the canvas is shown inside the window: its scale
// and the offset of its centre from the window centre. Pixel-space area
// selections are interpreted through these.
func (m *Manager) SetDisplay(zoom, panX, panY float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom, m.panX, m.panY = zoom, panX, panY
}

// SetBatch changes the flush batch size from the next render on.
func (m *Manager) SetBatch(n int) {
	m.mu.Lock()
	m.batch = n
	m.mu.Unlock()
}

// SetMoveDebounce changes the delay of the redraw that follows a move.
func (m *Manager) SetMoveDebounce(d time.Duration) {
	if d <= 0 {
		d = DefaultMoveDebounce
	}
	m.mu.Lock()
	m.moveDebounce = d
	m.mu.Unlock()
}

// Redraw renders the current view. opts change the view for this render
// only.
func (m *Manager) Redraw(ctx context.Context, opts ...mandel.ViewOption) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if err := m.quiesce(ctx); err != nil {
		return err
	}
	m.startFull(opts...)
	return nil
}

// SetView replaces the view, refits the canvas and renders it.
func (m *Manager) SetView(ctx context.Context, v mandel.View) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if err := m.quiesce(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.view = v
	m.fitCanvasLocked()
	m.mu.Unlock()
	m.startFull()
	return nil
}

// SetOrder switches the render order and restarts the render.
func (m *Manager) SetOrder(ctx context.Context, o render.Order) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if err := m.quiesce(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.order = o
	m.mu.Unlock()
	m.startFull()
	return nil
}

// SetCanvasSize resizes the canvas and renders it again if the size
// changed. A resize reshuffles the pixel permutation.
func (m *Manager) SetCanvasSize(ctx context.Context, w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("canvas %dx%d: %w", w, h, ErrInvalidSize)
	}
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if m.canvas.Size() == image.Pt(w, h) {
		return nil
	}
	if err := m.quiesce(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.resizeLocked(w, h)
	m.mu.Unlock()
	m.startFull()
	return nil
}

// Zoom scales the view about its centre. A percent above 1 zooms in,
// between 0 and 1 zooms out, and a negative percent also flips both axes.
// 1 leaves the view untouched and 0 is rejected. Factors that would leave
// an empty or non-finite region are ignored.
func (m *Manager) Zoom(ctx context.Context, percent float64) error {
	if percent == 0 {
		return ErrInvalidZoom
	}
	if percent == 1 {
		return nil
	}
	m.opMu.Lock()
	defer m.opMu.Unlock()

	scaler := (1 - 1/percent) / 2
	m.mu.Lock()
	r := m.view.Region
	m.mu.Unlock()
	dx, dy := r.Dx()*scaler, r.Dy()*scaler
	r.Xmin, r.Xmax = r.Xmin+dx, r.Xmax-dx
	r.Ymin, r.Ymax = r.Ymin+dy, r.Ymax-dy
	if r.Empty() || !finite(r) {
		return nil
	}

	if err := m.quiesce(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.view.Region = r
	m.mu.Unlock()

	m.startFull()
	return nil
}

// ZoomArea shows area, refitting the canvas to its aspect ratio.
//
// With pixelSpace the area is given in window pixels (X left/right,
// Y top/bottom) and is converted through the current display scale and
// offset; the imaginary axis grows upwards on screen. Otherwise area is in
// plane coordinates. Areas without width or height are ignored.
func (m *Manager) ZoomArea(ctx context.Context, area mandel.Region, pixelSpace bool) error {
	area = area.Canon()
	if area.Empty() {
		return nil
	}
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if err := m.quiesce(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	if pixelSpace {
		area = m.screenToPlaneLocked(area)
	}
	m.view.Region = area
	m.fitCanvasLocked()
	m.mu.Unlock()

	m.startFull()
	return nil
}

// screenToPlaneLocked converts a window-pixel rectangle to plane coordinates.
func (m *Manager) screenToPlaneLocked(a mandel.Region) mandel.Region {
	size := m.canvas.Size()
	cw, ch := float64(size.X)*m.zoom/2, float64(size.Y)*m.zoom/2
	wx, wy := float64(m.window.X)/2+m.panX, float64(m.window.Y)/2+m.panY
	left, right := wx-cw, wx+cw
	top, bottom := wy-ch, wy+ch

	r := m.view.Region
	return mandel.Region{
		Xmin: mandel.Map(a.Xmin, left, right, r.Xmin, r.Xmax),
		Xmax: mandel.Map(a.Xmax, left, right, r.Xmin, r.Xmax),
		Ymin: mandel.Map(a.Ymax, top, bottom, r.Ymax, r.Ymin),
		Ymax: mandel.Map(a.Ymin, top, bottom, r.Ymax, r.Ymin),
	}
}

// Move pans the view by amount pixels, right or down for positive amounts.
//
// With the top-to-bottom order the existing pixels are shifted and only the
// revealed band is computed; a full redraw follows after the move debounce.
// With the random order the view is simply redrawn.
func (m *Manager) Move(ctx context.Context, amount int, vertical bool) error {
	if amount == 0 {
		return nil
	}
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if err := m.quiesce(ctx); err != nil {
		return err
	}

	size := m.canvas.Size()
	m.mu.Lock()
	r := m.view.Region
	if vertical {
		d := float64(amount) / float64(max(size.Y-1, 1)) * r.Dy()
		r.Ymin, r.Ymax = r.Ymin-d, r.Ymax-d
	} else {
		d := float64(amount) / float64(max(size.X-1, 1)) * r.Dx()
		r.Xmin, r.Xmax = r.Xmin+d, r.Xmax+d
	}
	m.view.Region = r
	order := m.order
	m.mu.Unlock()

	if order == render.RandomPermutation {
		m.startFull()
		return nil
	}

	var band image.Rectangle
	if vertical {
		band = m.canvas.Shift(0, -amount)
	} else {
		band = m.canvas.Shift(-amount, 0)
	}
	m.present(image.Rectangle{Max: size})
	m.startBand(band)
	return nil
}

// Full grows the view to fill the whole window when the canvas is smaller,
// keeping the centre and the plane distance per pixel.
func (m *Manager) Full(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	size := m.canvas.Size()
	m.mu.Lock()
	win := m.window
	m.mu.Unlock()
	if size.X >= win.X && size.Y >= win.Y {
		return nil
	}
	if err := m.quiesce(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	r := m.view.Region
	px := r.Dx() / float64(max(size.X-1, 1))
	py := r.Dy() / float64(max(size.Y-1, 1))
	cx, cy := r.Center()
	hw, hh := px*float64(max(win.X-1, 1))/2, py*float64(max(win.Y-1, 1))/2
	m.view.Region = mandel.Region{Xmin: cx - hw, Xmax: cx + hw, Ymin: cy - hh, Ymax: cy + hh}
	m.resizeLocked(win.X, win.Y)
	m.mu.Unlock()

	m.startFull()
	return nil
}

// SetWindow records a new window size. A render in flight is paused until
// the resize debounce passes; then the canvas is refitted and redrawn if its
// fitted size changed, or the render is resumed.
func (m *Manager) SetWindow(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("window %dx%d: %w", w, h, ErrInvalidSize)
	}
	m.ctrl.Pause()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.window = image.Pt(w, h)
	if m.resizeTimer != nil {
		m.resizeTimer.Stop()
	}
	m.resizePending = true
	m.resizeGen++
	gen := m.resizeGen
	m.resizeTimer = time.AfterFunc(m.resizeDebounce, func() { m.applyResize(gen) })
	return nil
}

// applyResize refits the canvas to the window. Operations run during the
// debounce do not cancel it; a newer SetWindow does.
func (m *Manager) applyResize(gen uint64) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if gen != m.resizeGen {
		m.mu.Unlock()
		return
	}
	size := m.canvas.Size()
	w, h := gridSize(ScaleToWindow(float64(size.X), float64(size.Y), m.window, false))
	m.mu.Unlock()

	if image.Pt(w, h) == size {
		m.ctrl.Resume()
		m.clearResizePending(gen)
		return
	}
	if err := m.quiesce(m.ctx); err != nil {
		log.Printf("resize: %v", err)
		m.clearResizePending(gen)
		return
	}
	m.mu.Lock()
	m.resizeLocked(w, h)
	m.mu.Unlock()
	m.startFull()
	m.clearResizePending(gen)
}

func (m *Manager) clearResizePending(gen uint64) {
	m.mu.Lock()
	if gen == m.resizeGen {
		m.resizePending = false
		m.resizeTimer = nil
	}
	m.mu.Unlock()
}

// Wait blocks until no render runs and no debounced redraw is pending.
func (m *Manager) Wait(ctx context.Context) error {
	t := time.NewTicker(time.Millisecond)
	defer t.Stop()
	for {
		m.mu.Lock()
		pending := m.movePending || m.resizePending
		m.mu.Unlock()
		if !pending && !m.ctrl.Running() {
			return nil
		}
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops any render and pending redraw. The Manager must not be used
// afterwards.
func (m *Manager) Close(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.mu.Lock()
	m.resizeGen++
	if m.resizeTimer != nil {
		m.resizeTimer.Stop()
		m.resizeTimer = nil
	}
	m.resizePending = false
	m.mu.Unlock()
	err := m.quiesce(ctx)
	m.cancel()
	return err
}

// quiesce drops a pending move redraw and stops the render in flight.
// A pending window resize survives and refits whatever is rendered next.
// Callers hold opMu.
func (m *Manager) quiesce(ctx context.Context) error {
	m.mu.Lock()
	m.gen++
	if m.moveTimer != nil {
		m.moveTimer.Stop()
		m.moveTimer = nil
	}
	m.movePending = false
	m.mu.Unlock()

	if err := m.ctrl.Quiesce(ctx); err != nil {
		return fmt.Errorf("stop render: %w", err)
	}
	return nil
}

// fitCanvasLocked sizes the canvas to the view's aspect ratio within the window.
func (m *Manager) fitCanvasLocked() {
	r := m.view.Region
	if r.Empty() {
		return
	}
	w, h := gridSize(ScaleToWindow(abs(r.Dx()), abs(r.Dy()), m.window, false))
	m.resizeLocked(w, h)
}

// resizeLocked resizes the canvas and reshuffles the permutation on change.
func (m *Manager) resizeLocked(w, h int) {
	if m.canvas.Resize(w, h) {
		m.perm = render.NewPermutation(w*h, m.rng)
	}
}

func (m *Manager) present(dirty image.Rectangle) {
	if m.renderer.Frame != nil {
		m.renderer.Frame(dirty)
	}
}

// startFull launches a full render of the current view. Callers hold opMu
// and have quiesced the previous render.
func (m *Manager) startFull(opts ...mandel.ViewOption) {
	m.mu.Lock()
	v := m.view.Apply(opts...)
	order, perm := m.order, m.perm
	m.renderer.Batch = m.batch
	m.mu.Unlock()

	if v.Region.Empty() {
		return
	}
	size := m.canvas.Size()

	m.ctrl.Start()
	go func() {
		defer m.ctrl.End()
		log.Printf("render %s %dx%d: %s", order, size.X, size.Y, v)
		start := time.Now()

		var aborted bool
		if order == render.RandomPermutation {
			aborted = m.renderer.Random(m.ctx, v, perm)
		} else {
			aborted = m.renderer.Sequential(m.ctx, v, image.Rectangle{Max: size})
		}
		logDone(aborted, time.Since(start))
	}()
}

// startBand renders only band of the current view and then schedules a
// full redraw. Callers hold opMu and have quiesced the previous render.
func (m *Manager) startBand(band image.Rectangle) {
	m.mu.Lock()
	v := m.view
	m.renderer.Batch = m.batch
	m.movePending = true
	gen := m.gen
	m.mu.Unlock()

	m.ctrl.Start()
	go func() {
		defer m.ctrl.End()
		start := time.Now()
		aborted := m.renderer.Sequential(m.ctx, v, band)
		logDone(aborted, time.Since(start))

		m.mu.Lock()
		defer m.mu.Unlock()
		if gen != m.gen {
			return
		}
		if aborted {
			m.movePending = false
			return
		}
		m.moveTimer = time.AfterFunc(m.moveDebounce, func() { m.redrawAfterMove(gen) })
	}()
}

func (m *Manager) redrawAfterMove(gen uint64) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	stale := gen != m.gen
	m.mu.Unlock()
	if stale {
		return
	}

	if err := m.ctrl.Quiesce(m.ctx); err == nil {
		m.startFull()
	}
	m.mu.Lock()
	m.movePending = false
	m.moveTimer = nil
	m.mu.Unlock()
}

func logDone(aborted bool, d time.Duration) {
	if aborted {
		log.Printf("render aborted after %s", d)
		return
	}
	log.Printf("render finished in %s", d)
}

func finite(r mandel.Region) bool {
	for _, f := range []float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
