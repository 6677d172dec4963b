package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/viewport"
)

type Cli struct {
	Config string `arg:"-c,--config" default:"mandel.json" help:"path to the JSON config file, reloaded on change"`
}

// main is the entry point for the Mandelbrot server.
// The server owns a single viewport. Clients steer it over websocket or tcp
// and receive the canvas as it is painted.
func main() {
	var cli Cli
	arg.MustParse(&cli)

	if err := run(cli); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(cli Cli) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	live := &liveConfig{cfg: cfg}

	v, err := cfg.InitialView()
	if err != nil {
		return err
	}

	h := newHub()
	m, err := viewport.New(v, image.Pt(cfg.Width, cfg.Height), viewport.Config{
		Order:        cfg.RenderOrder(),
		Batch:        cfg.BatchPixels,
		MoveDebounce: cfg.MoveDebounce(),
		Frame:        h.markDirty,
	})
	if err != nil {
		return fmt.Errorf("viewport.New: %w", err)
	}

	go func() {
		err := watchConfig(ctx, cli.Config, func(next Config) {
			prev := live.Get()
			live.Set(next)
			m.SetBatch(next.BatchPixels)
			m.SetMoveDebounce(next.MoveDebounce())
			if next.Order != prev.Order {
				if err := m.SetOrder(ctx, next.RenderOrder()); err != nil {
					log.Printf("set order: %v", err)
				}
			}
		})
		if err != nil {
			log.Printf("config watcher: %v", err)
		}
	}()

	go h.pushLoop(ctx, m, func() time.Duration { return live.Get().PushInterval() })

	if err := m.Redraw(ctx); err != nil {
		return fmt.Errorf("initial redraw: %w", err)
	}

	// viewportIrpcService provides mandel.Viewport over network to both cli and web clients.
	// Every client steers the same Manager, so they all see the same canvas.
	viewportIrpcService := mandel.NewViewportIrpcService(viewportService{m: m})

	// irpc server with onConnect hook to plug each client's Display into the pushes
	irpcServer := irpc.NewServer(irpc.WithOnConnect(h.serveClient))
	irpcServer.AddService(viewportIrpcService)

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, cfg, m)

	// httpServer provides the static client along with websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("httpServer: %v", err)
		}
	}()
	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
			log.Fatalf("server.Serve ws: %v", err)
		}
	}()

	// TCP
	if cfg.TCPPort != 0 {
		log.Printf("tcp listening on port: %d", cfg.TCPPort)
		tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.TCPPort))
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		go func() {
			if err := irpcServer.Serve(tcpListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
				log.Fatalf("server.Serve tcp: %v", err)
			}
		}()
	}

	log.Printf("mb server waiting for tcp and websocket connections")
	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// closes the listeners and every client connection
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("httpServer.Shutdown: %v", err)
	}
	return m.Close(shutdownCtx)
}
