package render

import (
	"context"
	"fmt"
	"image"
	"runtime"

	mandel "github.com/marben/mandel_view"
)

// Order selects how the pixels of a full render are visited.
type Order int

const (
	TopToBottom       Order = iota // row-major, top row first
	RandomPermutation              // shuffled order over the whole grid
)

func (o Order) String() string {
	switch o {
	case TopToBottom:
		return "top-to-bottom"
	case RandomPermutation:
		return "random"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts the names produced by Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "top-to-bottom", "sequential":
		return TopToBottom, nil
	case "random":
		return RandomPermutation, nil
	}
	return 0, fmt.Errorf("unknown render order %q", s)
}

// DefaultBatch is the number of pixels computed between two flushes.
const DefaultBatch = 1920

// Renderer drives the escape-time engine and colour mapper over the canvas.
// Only one of its methods may run at a time.
type Renderer struct {
	Canvas     *Canvas
	Controller *Controller
	Progress   *Progress

	// Batch is the number of pixels between flushes. Rows are flushed at
	// their end as well.
	Batch int

	// Frame is called after every flush with the area that changed. It
	// stands for one display frame; nil yields the processor.
	Frame func(dirty image.Rectangle)
}

func (r *Renderer) batch() int {
	if r.Batch <= 0 {
		return DefaultBatch
	}
	return r.Batch
}

func (r *Renderer) frame(dirty image.Rectangle) {
	if r.Frame == nil {
		runtime.Gosched()
		return
	}
	r.Frame(dirty)
}

// axis maps pixel n of an extent of size pixels onto [lo, hi].
func axis(n, size int, lo, hi float64) float64 {
	return mandel.Map(float64(n), 0, float64(max(size-1, 1)), lo, hi)
}

// Sequential renders the pixels inside band row by row, left to right.
// Coordinates are mapped against the full grid, so a band renders exactly
// the pixels a full render would. Row 0 is the top of the imaginary axis.
// It reports whether the render was aborted.
func (r *Renderer) Sequential(ctx context.Context, v mandel.View, band image.Rectangle) (aborted bool) {
	size := r.Canvas.Size()
	band = band.Intersect(image.Rect(0, 0, size.X, size.Y))
	total := band.Dx() * band.Dy()

	r.Progress.Begin()
	defer r.Progress.Clear()
	if total == 0 {
		return false
	}

	batch := r.batch()
	row := make([]byte, band.Dx()*4)
	done := 0
	for y := band.Min.Y; y < band.Max.Y; y++ {
		im := axis(y, size.Y, v.Region.Ymax, v.Region.Ymin)
		flushed := band.Min.X
		for x := band.Min.X; x < band.Max.X; x++ {
			re := axis(x, size.X, v.Region.Xmin, v.Region.Xmax)
			c := Colorize(v.Algorithm.Escape(re, im, v.Limit), v.ColorMin, v.ColorMax, v.Color)
			i := (x - band.Min.X) * 4
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A

			done++
			r.Progress.Set(float64(done) / float64(total))
			runtime.Gosched()
			if r.Controller.Check(ctx) {
				return true
			}

			if x+1-flushed >= batch {
				r.flushRow(row, band.Min.X, flushed, x+1, y)
				flushed = x + 1
				if r.Controller.Check(ctx) {
					return true
				}
			}
		}
		if flushed < band.Max.X {
			r.flushRow(row, band.Min.X, flushed, band.Max.X, y)
			if r.Controller.Check(ctx) {
				return true
			}
		}
	}
	return false
}

// flushRow publishes columns [from, to) of the row buffer, which starts at column x0.
func (r *Renderer) flushRow(row []byte, x0, from, to, y int) {
	r.Canvas.setRow(y, from, row[(from-x0)*4:(to-x0)*4])
	r.frame(image.Rect(from, y, to, y+1))
}

// Random renders the whole grid in the order given by perm, which must be
// a permutation of the grid's pixel indices.
// It reports whether the render was aborted.
func (r *Renderer) Random(ctx context.Context, v mandel.View, perm Permutation) (aborted bool) {
	size := r.Canvas.Size()
	total := size.X * size.Y
	full := image.Rect(0, 0, size.X, size.Y)

	r.Progress.Begin()
	defer r.Progress.Clear()
	if total == 0 || len(perm) != total {
		return false
	}

	batch := r.batch()
	pending := make([]pixel, 0, batch)
	for done, idx := range perm {
		x, y := idx%size.X, idx/size.X
		re := axis(x, size.X, v.Region.Xmin, v.Region.Xmax)
		im := axis(y, size.Y, v.Region.Ymax, v.Region.Ymin)
		pending = append(pending, pixel{x: x, y: y, c: Colorize(v.Algorithm.Escape(re, im, v.Limit), v.ColorMin, v.ColorMax, v.Color)})

		r.Progress.Set(float64(done+1) / float64(total))
		runtime.Gosched()
		if r.Controller.Check(ctx) {
			return true
		}

		if len(pending) >= batch || done+1 == total {
			r.Canvas.setPixels(pending)
			pending = pending[:0]
			r.frame(full)
			if r.Controller.Check(ctx) {
				return true
			}
		}
	}
	return false
}
