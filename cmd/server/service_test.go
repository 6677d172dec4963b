package main

import (
	"context"
	"image"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
	"github.com/marben/mandel_view/viewport"
)

func newTestManager(t *testing.T, frame func(image.Rectangle)) *viewport.Manager {
	t.Helper()
	v := mandel.DefaultView(mandel.Normal).Apply(mandel.WithLimit(20))
	v.Region = mandel.Region{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}
	m, err := viewport.New(v, image.Pt(24, 24), viewport.Config{
		Batch:          16,
		MoveDebounce:   5 * time.Millisecond,
		ResizeDebounce: 5 * time.Millisecond,
		Frame:          frame,
	})
	if err != nil {
		t.Fatalf("viewport.New: %v", err)
	}
	t.Cleanup(func() { m.Close(context.Background()) })
	return m
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// recordingDisplay keeps everything the server pushed to it.
type recordingDisplay struct {
	mu     sync.Mutex
	tiles  []image.Rectangle
	states []string
}

func (d *recordingDisplay) Progress(ctx context.Context, value float64, state string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.states = append(d.states, state)
	return nil
}

func (d *recordingDisplay) Tile(ctx context.Context, tile image.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tiles = append(d.tiles, tile.Rect)
	return nil
}

func (d *recordingDisplay) snapshot() (covered image.Rectangle, states []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range d.tiles {
		covered = covered.Union(r)
	}
	return covered, append([]string(nil), d.states...)
}

// startTestServer serves m on a local tcp port and connects one client to it.
func startTestServer(t *testing.T, m *viewport.Manager, h *hub, display mandel.Display) mandel.Viewport {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	s := irpc.NewServer(irpc.WithOnConnect(h.serveClient))
	s.AddService(mandel.NewViewportIrpcService(viewportService{m: m}))
	go s.Serve(l)
	t.Cleanup(func() { s.Close() })

	conn, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatalf("net.Dial: %v", err)
	}
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(mandel.NewDisplayIrpcService(display)))
	t.Cleanup(func() { ep.Close() })

	client, err := mandel.NewViewportIrpcClient(ep)
	if err != nil {
		t.Fatalf("NewViewportIrpcClient: %v", err)
	}
	return client
}

func TestServiceViewAndImage(t *testing.T) {
	m := newTestManager(t, nil)
	client := startTestServer(t, m, newHub(), &recordingDisplay{})
	ctx := testContext(t)

	got, err := client.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if got != m.View().String() {
		t.Fatalf("View = %q, want %q", got, m.View())
	}

	want := "1:30,null,0,1:-1,1,-1,1"
	if err := client.SetView(ctx, want); err != nil {
		t.Fatalf("SetView: %v", err)
	}
	if got, _ := client.View(); got != want {
		t.Fatalf("View after SetView = %q, want %q", got, want)
	}
	if err := client.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	img, err := client.GetImage()
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if img.Bounds().Size() != image.Pt(24, 24) {
		t.Fatalf("size = %v", img.Bounds().Size())
	}
	// the origin is inside the set and stays transparent
	if _, _, _, a := img.At(12, 12).RGBA(); a != 0 {
		t.Fatalf("centre alpha = %d, want 0", a)
	}
}

func TestServiceErrorsCrossTheWire(t *testing.T) {
	m := newTestManager(t, nil)
	client := startTestServer(t, m, newHub(), &recordingDisplay{})
	ctx := testContext(t)

	if err := client.Zoom(ctx, 0); err == nil || err.Error() != viewport.ErrInvalidZoom.Error() {
		t.Errorf("Zoom(0) = %v, want %q", err, viewport.ErrInvalidZoom)
	}
	if err := client.SetView(ctx, "garbage"); err == nil || !strings.Contains(err.Error(), mandel.ErrInvalidView.Error()) {
		t.Errorf("SetView(garbage) = %v", err)
	}
	if err := client.Landmark(ctx, "atlantis"); err == nil {
		t.Errorf("unknown landmark accepted")
	}
	if err := client.SetOrder(ctx, "sideways"); err == nil {
		t.Errorf("bad order accepted")
	}
	if err := client.Redraw(ctx, mandel.Overrides{Algorithm: "7"}); err == nil {
		t.Errorf("invalid algorithm accepted")
	}
	if err := client.SetWindow(0, 3); err == nil {
		t.Errorf("empty window accepted")
	}
}

func TestServiceRedrawOverridesAreTransient(t *testing.T) {
	m := newTestManager(t, nil)
	client := startTestServer(t, m, newHub(), &recordingDisplay{})
	ctx := testContext(t)
	before := m.View()

	if err := client.Redraw(ctx, mandel.Overrides{Limit: 5, Color: "#102030"}); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if err := client.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if m.View() != before {
		t.Fatalf("overrides leaked into the view: %s", m.View())
	}
}

func TestServiceLandmarkOrderAndSize(t *testing.T) {
	m := newTestManager(t, nil)
	client := startTestServer(t, m, newHub(), &recordingDisplay{})
	ctx := testContext(t)

	if err := client.Landmark(ctx, "elephant"); err != nil {
		t.Fatalf("Landmark: %v", err)
	}
	want, _ := mandel.Landmark("elephant")
	if got := m.View().Region; got != want {
		t.Fatalf("region = %+v, want %+v", got, want)
	}
	if err := client.SetOrder(ctx, "random"); err != nil {
		t.Fatalf("SetOrder: %v", err)
	}
	if m.Order() != render.RandomPermutation {
		t.Fatalf("order = %s", m.Order())
	}
	if err := client.SetCanvasSize(ctx, 10, 6); err != nil {
		t.Fatalf("SetCanvasSize: %v", err)
	}
	if got := m.Size(); got != image.Pt(10, 6) {
		t.Fatalf("size = %v", got)
	}
	if err := client.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := client.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if err := client.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}
