// cliclient renders a view to a PNG file, either locally or by steering a
// running mandel server.
package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexflint/go-arg"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
)

type Cli struct {
	View      string        `arg:"-v,--view" help:"view string, e.g. 0:200,null,-1.3,1.99:-2,0.6,-1.3,1.3"`
	Landmark  string        `arg:"-l,--landmark" help:"named region replacing the view's region"`
	Algorithm *int          `arg:"-a,--algorithm" help:"0 normal, 1 spiky, 2 noodles"`
	Limit     *int          `arg:"-n,--limit" help:"iteration limit"`
	Color     string        `arg:"--color" help:"hue, or a base colour as #rrggbb"`
	Width     int           `arg:"-W,--width" default:"800" help:"window width in pixels"`
	Height    int           `arg:"-H,--height" default:"600" help:"window height in pixels"`
	Order     string        `arg:"--order" default:"top-to-bottom" help:"top-to-bottom or random"`
	Zoom      float64       `arg:"-z,--zoom" default:"1" help:"zoom factor applied before rendering"`
	Output    string        `arg:"-o,--output" default:"mandel.png" help:"output file"`
	Preview   int           `arg:"--preview" help:"also write a thumbnail of this width"`
	Server    string        `arg:"-s,--server" help:"mandel server, a websocket url such as ws://localhost:8080/ws or a tcp address such as localhost:8081"`
	Timeout   time.Duration `arg:"--timeout" default:"5m" help:"give up after this long"`
}

func (Cli) Description() string {
	return "renders a mandelbrot view to a png file"
}

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	var cli Cli
	arg.MustParse(&cli)

	if err := run(cli); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run(cli Cli) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, cli.Timeout)
	defer cancelTimeout()

	v, err := cli.view()
	if err != nil {
		return err
	}

	var img image.Image
	if cli.Server != "" {
		log.Printf("Rendering %s on %s...", v, cli.Server)
		img, err = renderRemote(ctx, cli.Server, v, image.Pt(cli.Width, cli.Height), cli.Zoom)
	} else {
		order, perr := render.ParseOrder(cli.Order)
		if perr != nil {
			return perr
		}
		log.Printf("Rendering %s locally...", v)
		img, err = renderLocal(ctx, v, image.Pt(cli.Width, cli.Height), order, cli.Zoom)
	}
	if err != nil {
		return err
	}

	log.Printf("Saving rendered image to %q...", cli.Output)
	if err := writePNG(cli.Output, img); err != nil {
		return err
	}

	if cli.Preview > 0 {
		fn := previewName(cli.Output)
		log.Printf("Saving %dpx preview to %q...", cli.Preview, fn)
		if err := writePNG(fn, thumbnail(img, cli.Preview)); err != nil {
			return err
		}
	}

	log.Printf("Fully rendered image saved to %q", cli.Output)
	return nil
}

// view builds the view to render from the flags.
func (cli Cli) view() (mandel.View, error) {
	v := mandel.DefaultView(mandel.Normal)
	if cli.Algorithm != nil {
		a := mandel.Algorithm(*cli.Algorithm)
		if !a.Valid() {
			return mandel.View{}, fmt.Errorf("unknown algorithm %d", *cli.Algorithm)
		}
		v = mandel.DefaultView(a)
	}
	if cli.View != "" {
		var err error
		if v, err = mandel.ParseView(cli.View); err != nil {
			return mandel.View{}, err
		}
		if cli.Algorithm != nil {
			v.Algorithm = mandel.Algorithm(*cli.Algorithm)
		}
	}
	if cli.Landmark != "" {
		r, ok := mandel.Landmark(cli.Landmark)
		if !ok {
			return mandel.View{}, fmt.Errorf("unknown landmark %q, have %s", cli.Landmark, strings.Join(mandel.LandmarkNames(), ", "))
		}
		v.Region = r
	}
	if cli.Limit != nil {
		v.Limit = *cli.Limit
	}
	if cli.Color != "" {
		mode, err := mandel.ParseColorMode(cli.Color)
		if err != nil {
			return mandel.View{}, err
		}
		v.Color = mode
	}
	if v.Limit < 1 {
		return mandel.View{}, fmt.Errorf("iteration limit must be positive, got %d", v.Limit)
	}
	return v, nil
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}

func previewName(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "-preview" + ext
}
