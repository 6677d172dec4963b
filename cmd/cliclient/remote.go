package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"net"
	"strings"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandel_view"
)

// logDisplay is the Display this client provides to the server. It only logs
// the progress the server pushes and drops the tiles.
type logDisplay struct{}

func (logDisplay) Progress(ctx context.Context, value float64, state string) error {
	if state == "active" {
		log.Printf("Server rendering: %3.0f%%", value*100)
	}
	return nil
}

func (logDisplay) Tile(ctx context.Context, tile image.RGBA) error { return nil }

// dial connects to a ws:// or wss:// url over websocket and to anything else over tcp.
func dial(ctx context.Context, addr string) (io.ReadWriteCloser, error) {
	if !strings.HasPrefix(addr, "ws://") && !strings.HasPrefix(addr, "wss://") {
		var d net.Dialer
		return d.DialContext(ctx, "tcp", addr)
	}
	c, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return nil, err
	}
	// tiles and whole images arrive as single messages
	c.SetReadLimit(-1)
	return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
}

// renderRemote asks the server at addr to show v in a window of the given
// size and downloads the finished canvas.
func renderRemote(ctx context.Context, addr string, v mandel.View, window image.Point, zoom float64) (image.Image, error) {
	log.Printf("Connecting to Mandelbrot server on %s...", addr)
	conn, err := dial(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	// the server pushes progress to our display while it renders
	displayService := mandel.NewDisplayIrpcService(logDisplay{})
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(displayService))
	defer ep.Close()

	client, err := mandel.NewViewportIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create Viewport client: %w", err)
	}

	if err := client.SetWindow(window.X, window.Y); err != nil {
		return nil, fmt.Errorf("client.SetWindow: %w", err)
	}
	if err := client.SetView(ctx, v.String()); err != nil {
		return nil, fmt.Errorf("client.SetView: %w", err)
	}
	if zoom != 1 {
		if err := client.Zoom(ctx, zoom); err != nil {
			return nil, fmt.Errorf("client.Zoom: %w", err)
		}
	}
	if err := client.Wait(ctx); err != nil {
		return nil, fmt.Errorf("client.Wait: %w", err)
	}

	log.Printf("Requesting fully rendered image from server...")
	img, err := client.GetImage()
	if err != nil {
		return nil, fmt.Errorf("client.GetImage: %w", err)
	}
	return &img, nil
}
