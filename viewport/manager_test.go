package viewport

import (
	"bytes"
	"context"
	"errors"
	"image"
	"math"
	"testing"
	"time"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
)

var square = mandel.DefaultView(mandel.Normal).Apply(func(v *mandel.View) {
	v.Limit = 30
	v.Region = mandel.Region{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}
})

func newTestManager(t *testing.T, v mandel.View, window image.Point, cfg Config) *Manager {
	t.Helper()
	if cfg.Batch == 0 {
		cfg.Batch = 16
	}
	if cfg.MoveDebounce == 0 {
		cfg.MoveDebounce = 5 * time.Millisecond
	}
	if cfg.ResizeDebounce == 0 {
		cfg.ResizeDebounce = 5 * time.Millisecond
	}
	m, err := New(v, window, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { m.Close(context.Background()) })
	return m
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func wait(t *testing.T, m *Manager) {
	t.Helper()
	if err := m.Wait(testContext(t)); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

// reference renders v on a fresh canvas of the given size.
func reference(v mandel.View, size image.Point) *image.RGBA {
	r := &render.Renderer{
		Canvas:     render.NewCanvas(size.X, size.Y),
		Controller: render.NewController(),
		Progress:   &render.Progress{},
	}
	r.Sequential(context.Background(), v, image.Rectangle{Max: size})
	return r.Canvas.GetImage()
}

func TestScaleToWindow(t *testing.T) {
	tests := []struct {
		w, h   float64
		window image.Point
		invert bool
		ww, wh float64
	}{
		{2.6, 2.6, image.Pt(800, 600), false, 600, 600},
		{4, 1, image.Pt(800, 600), false, 800, 200},
		{100, 300, image.Pt(800, 600), false, 200, 600},
		{2, 2, image.Pt(800, 600), true, 800.0 / 300, 2},
		{400, 100, image.Pt(800, 600), true, 400, 300},
	}
	for _, tt := range tests {
		w, h := ScaleToWindow(tt.w, tt.h, tt.window, tt.invert)
		if math.Abs(w-tt.ww) > 1e-9 || math.Abs(h-tt.wh) > 1e-9 {
			t.Errorf("ScaleToWindow(%v, %v, %v, %v) = %v, %v; want %v, %v", tt.w, tt.h, tt.window, tt.invert, w, h, tt.ww, tt.wh)
		}
	}
}

func TestNewFitsCanvas(t *testing.T) {
	m := newTestManager(t, mandel.DefaultView(mandel.Normal), image.Pt(300, 100), Config{})
	// 2.6 × 2.6 region in a 300×100 window
	if got := m.Size(); got != image.Pt(100, 100) {
		t.Errorf("Size() = %v, want 100x100", got)
	}
	if _, err := New(square, image.Pt(0, 10), Config{}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("New with empty window: %v, want ErrInvalidSize", err)
	}
}

func TestRedrawRendersView(t *testing.T) {
	m := newTestManager(t, square, image.Pt(24, 24), Config{})
	ctx := testContext(t)
	if err := m.Redraw(ctx); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	wait(t, m)
	if !bytes.Equal(m.GetImage().Pix, reference(square, m.Size()).Pix) {
		t.Errorf("rendered image differs from reference")
	}
	if _, s := m.Progress().Get(); s != render.ProgressIdle {
		t.Errorf("progress after render = %v, want idle", s)
	}
}

func TestRedrawOverridesAreTransient(t *testing.T) {
	m := newTestManager(t, square, image.Pt(16, 16), Config{})
	ctx := testContext(t)
	if err := m.Redraw(ctx, mandel.WithLimit(3), mandel.WithColor(mandel.SaturationOf(1, 2, 3))); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	wait(t, m)
	if m.View() != square {
		t.Errorf("View() = %v after overridden redraw, want %v", m.View(), square)
	}
	want := reference(square.Apply(mandel.WithLimit(3), mandel.WithColor(mandel.SaturationOf(1, 2, 3))), m.Size())
	if !bytes.Equal(m.GetImage().Pix, want.Pix) {
		t.Errorf("overridden render differs from reference")
	}
}

func TestZoomIdentity(t *testing.T) {
	m := newTestManager(t, square, image.Pt(16, 16), Config{})
	ctx := testContext(t)
	before := m.View().Region
	if err := m.Zoom(ctx, 1); err != nil {
		t.Fatalf("Zoom(1): %v", err)
	}
	if got := m.View().Region; got != before {
		t.Errorf("Zoom(1) changed region to %+v", got)
	}

	if err := m.Zoom(ctx, 2); err != nil {
		t.Fatalf("Zoom(2): %v", err)
	}
	zoomed := m.View().Region
	if math.Abs(zoomed.Dx()-before.Dx()/2) > 1e-12 {
		t.Errorf("Zoom(2) span = %v, want %v", zoomed.Dx(), before.Dx()/2)
	}
	if err := m.Zoom(ctx, 0.5); err != nil {
		t.Fatalf("Zoom(0.5): %v", err)
	}
	after := m.View().Region
	for _, p := range [][2]float64{
		{after.Xmin, before.Xmin}, {after.Xmax, before.Xmax},
		{after.Ymin, before.Ymin}, {after.Ymax, before.Ymax},
	} {
		if math.Abs(p[0]-p[1]) > 1e-12 {
			t.Errorf("Zoom(2), Zoom(0.5) = %+v, want %+v", after, before)
			break
		}
	}
	wait(t, m)
}

func TestZoomZero(t *testing.T) {
	m := newTestManager(t, square, image.Pt(16, 16), Config{})
	if err := m.Zoom(testContext(t), 0); !errors.Is(err, ErrInvalidZoom) {
		t.Errorf("Zoom(0) = %v, want ErrInvalidZoom", err)
	}
	if m.View() != square {
		t.Errorf("Zoom(0) changed the view")
	}
}

func TestZoomDegenerateFactorIgnored(t *testing.T) {
	m := newTestManager(t, square, image.Pt(16, 16), Config{})
	ctx := testContext(t)
	for _, percent := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 1e300, math.SmallestNonzeroFloat64} {
		if err := m.Zoom(ctx, percent); err != nil {
			t.Errorf("Zoom(%v): %v", percent, err)
		}
		if m.View() != square {
			t.Fatalf("Zoom(%v) changed the view to %+v", percent, m.View().Region)
		}
	}
	if m.Controller().Running() {
		t.Errorf("ignored zoom started a render")
	}
}

func TestZoomNegativeFlips(t *testing.T) {
	m := newTestManager(t, square, image.Pt(16, 16), Config{})
	if err := m.Zoom(testContext(t), -1); err != nil {
		t.Fatalf("Zoom(-1): %v", err)
	}
	r := m.View().Region
	if r.Xmin != 2 || r.Xmax != -2 || r.Ymin != 2 || r.Ymax != -2 {
		t.Errorf("Zoom(-1) region = %+v, want axes flipped", r)
	}
	wait(t, m)
}

func TestZoomAreaPlane(t *testing.T) {
	m := newTestManager(t, square, image.Pt(200, 100), Config{})
	ctx := testContext(t)

	area := mandel.Region{Xmin: 0.5, Xmax: -0.5, Ymin: 0, Ymax: 0.25}
	if err := m.ZoomArea(ctx, area, false); err != nil {
		t.Fatalf("ZoomArea: %v", err)
	}
	want := mandel.Region{Xmin: -0.5, Xmax: 0.5, Ymin: 0, Ymax: 0.25}
	if got := m.View().Region; got != want {
		t.Errorf("region = %+v, want %+v", got, want)
	}
	if got := m.Size(); got != image.Pt(200, 50) {
		t.Errorf("canvas = %v, want 200x50", got)
	}
	wait(t, m)

	if err := m.ZoomArea(ctx, mandel.Region{Xmin: 1, Xmax: 1, Ymin: 0, Ymax: 3}, false); err != nil {
		t.Fatalf("zero-width ZoomArea: %v", err)
	}
	if got := m.View().Region; got != want {
		t.Errorf("zero-width ZoomArea changed region to %+v", got)
	}
	if m.Controller().Running() {
		t.Errorf("zero-width ZoomArea started a render")
	}
}

func TestZoomAreaPixelSpace(t *testing.T) {
	v := square
	v.Region = mandel.Region{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1}
	m := newTestManager(t, v, image.Pt(200, 100), Config{})
	if got := m.Size(); got != image.Pt(200, 100) {
		t.Fatalf("canvas = %v, want 200x100", got)
	}
	// dragged from bottom-right to top-left
	sel := mandel.Region{Xmin: 150, Xmax: 50, Ymin: 75, Ymax: 25}
	if err := m.ZoomArea(testContext(t), sel, true); err != nil {
		t.Fatalf("ZoomArea: %v", err)
	}
	want := mandel.Region{Xmin: -1, Xmax: 1, Ymin: -0.5, Ymax: 0.5}
	if got := m.View().Region; got != want {
		t.Errorf("region = %+v, want %+v", got, want)
	}
	wait(t, m)
}

func TestZoomAreaPixelSpaceDisplayScale(t *testing.T) {
	v := square
	v.Region = mandel.Region{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1}
	m := newTestManager(t, v, image.Pt(200, 100), Config{})
	// canvas shown at half size, shifted 10px right: it covers x 60..160, y 25..75
	m.SetDisplay(0.5, 10, 0)
	sel := mandel.Region{Xmin: 60, Xmax: 110, Ymin: 25, Ymax: 50}
	if err := m.ZoomArea(testContext(t), sel, true); err != nil {
		t.Fatalf("ZoomArea: %v", err)
	}
	want := mandel.Region{Xmin: -2, Xmax: 0, Ymin: 0, Ymax: 1}
	if got := m.View().Region; got != want {
		t.Errorf("region = %+v, want %+v", got, want)
	}
	wait(t, m)
}

func TestMoveSequentialShiftsAndFillsBand(t *testing.T) {
	m := newTestManager(t, square, image.Pt(40, 40), Config{MoveDebounce: time.Hour})
	ctx := testContext(t)
	if err := m.Redraw(ctx); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	wait(t, m)
	old := m.GetImage()

	if err := m.Move(ctx, 5, false); err != nil {
		t.Fatalf("Move: %v", err)
	}
	for m.Controller().Running() {
		time.Sleep(time.Millisecond)
	}
	moved := m.GetImage()

	for y := 0; y < 40; y++ {
		for x := 0; x < 35; x++ {
			if moved.RGBAAt(x, y) != old.RGBAAt(x+5, y) {
				t.Fatalf("pixel (%d,%d) = %v, want shifted %v", x, y, moved.RGBAAt(x, y), old.RGBAAt(x+5, y))
			}
		}
	}
	band := image.Rect(35, 0, 40, 40)
	want := reference(m.View(), m.Size())
	for y := band.Min.Y; y < band.Max.Y; y++ {
		for x := band.Min.X; x < band.Max.X; x++ {
			if moved.RGBAAt(x, y) != want.RGBAAt(x, y) {
				t.Fatalf("band pixel (%d,%d) = %v, want %v", x, y, moved.RGBAAt(x, y), want.RGBAAt(x, y))
			}
		}
	}

	m.mu.Lock()
	pending := m.movePending
	m.mu.Unlock()
	if !pending {
		t.Errorf("no full redraw pending after move")
	}

	d := 5.0 / 39 * 4
	if r := m.View().Region; math.Abs(r.Xmin-(-2+d)) > 1e-12 || r.Ymin != -2 {
		t.Errorf("region after Move = %+v", r)
	}
}

func TestMoveVerticalThenDebouncedRedraw(t *testing.T) {
	m := newTestManager(t, square, image.Pt(30, 30), Config{})
	ctx := testContext(t)
	if err := m.Redraw(ctx); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	wait(t, m)
	if err := m.Move(ctx, -4, true); err != nil {
		t.Fatalf("Move: %v", err)
	}
	wait(t, m)

	r := m.View().Region
	d := -4.0 / 29 * 4
	if math.Abs(r.Ymax-(2-d)) > 1e-12 {
		t.Errorf("Ymax after Move(-4, vertical) = %v, want %v", r.Ymax, 2-d)
	}
	if !bytes.Equal(m.GetImage().Pix, reference(m.View(), m.Size()).Pix) {
		t.Errorf("image after debounced redraw differs from reference")
	}
}

func TestMoveRandomOrderRedraws(t *testing.T) {
	m := newTestManager(t, square, image.Pt(20, 20), Config{Order: render.RandomPermutation})
	ctx := testContext(t)
	if err := m.Move(ctx, 3, false); err != nil {
		t.Fatalf("Move: %v", err)
	}
	m.mu.Lock()
	pending := m.movePending
	m.mu.Unlock()
	if pending {
		t.Errorf("random order move scheduled a differential redraw")
	}
	wait(t, m)
	if !bytes.Equal(m.GetImage().Pix, reference(m.View(), m.Size()).Pix) {
		t.Errorf("random order image differs from reference")
	}
}

func TestSetCanvasSizeReshuffles(t *testing.T) {
	m := newTestManager(t, square, image.Pt(20, 20), Config{Order: render.RandomPermutation})
	ctx := testContext(t)
	m.mu.Lock()
	before := m.perm
	m.mu.Unlock()

	if err := m.SetCanvasSize(ctx, 20, 20); err != nil {
		t.Fatalf("SetCanvasSize same: %v", err)
	}
	m.mu.Lock()
	same := &m.perm[0] == &before[0]
	m.mu.Unlock()
	if !same {
		t.Errorf("permutation regenerated for unchanged size")
	}

	if err := m.SetCanvasSize(ctx, 12, 7); err != nil {
		t.Fatalf("SetCanvasSize: %v", err)
	}
	m.mu.Lock()
	n := len(m.perm)
	m.mu.Unlock()
	if n != 12*7 {
		t.Errorf("len(perm) = %d, want %d", n, 12*7)
	}
	wait(t, m)
	if !bytes.Equal(m.GetImage().Pix, reference(m.View(), image.Pt(12, 7)).Pix) {
		t.Errorf("image after resize differs from reference")
	}
	if err := m.SetCanvasSize(ctx, 0, 7); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetCanvasSize(0, 7) = %v, want ErrInvalidSize", err)
	}
}

func TestFullKeepsCentreAndDensity(t *testing.T) {
	v := square
	v.Region = mandel.Region{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1}
	m := newTestManager(t, v, image.Pt(100, 50), Config{})
	if got := m.Size(); got != image.Pt(50, 50) {
		t.Fatalf("canvas = %v, want 50x50", got)
	}
	if err := m.Full(testContext(t)); err != nil {
		t.Fatalf("Full: %v", err)
	}
	if got := m.Size(); got != image.Pt(100, 50) {
		t.Errorf("canvas after Full = %v, want 100x50", got)
	}
	r := m.View().Region
	cx, cy := r.Center()
	if math.Abs(cx) > 1e-12 || math.Abs(cy) > 1e-12 {
		t.Errorf("centre moved to %v, %v", cx, cy)
	}
	if math.Abs(r.Dy()-2) > 1e-12 || math.Abs(r.Dx()-2.0/49*99) > 1e-12 {
		t.Errorf("region after Full = %+v", r)
	}
	wait(t, m)
}

func TestOperationsInterruptPausedRender(t *testing.T) {
	m := newTestManager(t, mandel.DefaultView(mandel.Normal), image.Pt(200, 200), Config{})
	ctx := testContext(t)
	if err := m.Redraw(ctx); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	m.Pause()
	if err := m.Zoom(ctx, 4); err != nil {
		t.Fatalf("Zoom during paused render: %v", err)
	}
	if m.Controller().Paused() || m.Controller().Aborted() {
		t.Errorf("new render inherited pause/abort flags")
	}
	if err := m.Redraw(ctx); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	wait(t, m)
}

func TestSetWindowResumesUnchanged(t *testing.T) {
	m := newTestManager(t, square, image.Pt(30, 30), Config{})
	ctx := testContext(t)
	if err := m.Redraw(ctx); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if err := m.SetWindow(30, 30); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}
	wait(t, m)
	if m.Size() != image.Pt(30, 30) {
		t.Errorf("canvas = %v", m.Size())
	}
	if !bytes.Equal(m.GetImage().Pix, reference(square, m.Size()).Pix) {
		t.Errorf("resumed render differs from reference")
	}
}

func TestSetWindowRefits(t *testing.T) {
	m := newTestManager(t, square, image.Pt(30, 30), Config{})
	if err := m.SetWindow(60, 20); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}
	wait(t, m)
	if got := m.Size(); got != image.Pt(20, 20) {
		t.Errorf("canvas after SetWindow(60, 20) = %v, want 20x20", got)
	}
	if err := m.SetWindow(0, 20); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetWindow(0, 20) = %v, want ErrInvalidSize", err)
	}
}

func TestSetWindowSurvivesOperations(t *testing.T) {
	m := newTestManager(t, square, image.Pt(30, 30), Config{ResizeDebounce: 200 * time.Millisecond})
	ctx := testContext(t)
	if err := m.SetWindow(60, 20); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}
	if err := m.Zoom(ctx, 2); err != nil {
		t.Fatalf("Zoom: %v", err)
	}
	wait(t, m)
	if got := m.Size(); got != image.Pt(20, 20) {
		t.Errorf("canvas after SetWindow(60, 20), Zoom(2) = %v, want 20x20", got)
	}
	if !bytes.Equal(m.GetImage().Pix, reference(m.View(), m.Size()).Pix) {
		t.Errorf("image after refit differs from reference")
	}
}

func TestSetWindowDropsMoveRedraw(t *testing.T) {
	m := newTestManager(t, square, image.Pt(30, 30), Config{MoveDebounce: time.Hour})
	ctx := testContext(t)
	if err := m.Redraw(ctx); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	wait(t, m)
	if err := m.Move(ctx, 3, false); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := m.SetWindow(60, 20); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}
	// the refit redraws the moved view, so the hour-long move redraw must not hold Wait
	wait(t, m)

	m.mu.Lock()
	pending, timer := m.movePending, m.moveTimer
	m.mu.Unlock()
	if pending || timer != nil {
		t.Errorf("move redraw still scheduled after refit: pending=%v timer=%v", pending, timer != nil)
	}
	if got := m.Size(); got != image.Pt(20, 20) {
		t.Errorf("canvas = %v, want 20x20", got)
	}
	if !bytes.Equal(m.GetImage().Pix, reference(m.View(), m.Size()).Pix) {
		t.Errorf("image after refit differs from reference")
	}
}
