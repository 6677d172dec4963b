package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
)

// Canvas is the shared RGBA output buffer. The renderer writes into it in
// batches; display code reads copies of it.
type Canvas struct {
	mu  sync.RWMutex
	img *image.RGBA
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the grid dimensions.
func (c *Canvas) Size() image.Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.img.Rect.Size()
}

// Resize replaces the buffer with a blank one when the dimensions change.
// It reports whether they did.
func (c *Canvas) Resize(w, h int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img.Rect.Dx() == w && c.img.Rect.Dy() == h {
		return false
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	return true
}

// GetImage returns a copy of the whole buffer.
func (c *Canvas) GetImage() *image.RGBA {
	return c.SubImage(c.bounds())
}

// SubImage returns a copy of the part of the buffer inside r.
// The copy keeps the canvas coordinates of r.
func (c *Canvas) SubImage(r image.Rectangle) *image.RGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r = r.Intersect(c.img.Rect)
	out := image.NewRGBA(r)
	draw.Draw(out, r, c.img, r.Min, draw.Src)
	return out
}

func (c *Canvas) bounds() image.Rectangle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.img.Rect
}

// setRow copies RGBA bytes into row y starting at column x0.
func (c *Canvas) setRow(y, x0 int, pix []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if y >= c.img.Rect.Dy() {
		return
	}
	off := c.img.PixOffset(x0, y)
	end := min(off+len(pix), c.img.PixOffset(0, y)+c.img.Rect.Dx()*4)
	copy(c.img.Pix[off:end], pix)
}

type pixel struct {
	x, y int
	c    color.RGBA
}

func (c *Canvas) setPixels(px []pixel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range px {
		c.img.SetRGBA(p.x, p.y, p.c)
	}
}

// Shift moves the content by (dx, dy) pixels, as a scroll that reveals
// new area on the opposite edge. Revealed pixels are cleared to transparent.
// It returns the revealed band, or the whole grid when nothing survives.
func (c *Canvas) Shift(dx, dy int) image.Rectangle {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.img.Rect
	moved := b.Add(image.Pt(dx, dy)).Intersect(b)
	if moved.Empty() {
		draw.Draw(c.img, b, image.Transparent, image.Point{}, draw.Src)
		return b
	}
	draw.Draw(c.img, moved, c.img, moved.Min.Sub(image.Pt(dx, dy)), draw.Src)

	var band image.Rectangle
	switch {
	case dx > 0:
		band = image.Rect(b.Min.X, b.Min.Y, moved.Min.X, b.Max.Y)
	case dx < 0:
		band = image.Rect(moved.Max.X, b.Min.Y, b.Max.X, b.Max.Y)
	case dy > 0:
		band = image.Rect(b.Min.X, b.Min.Y, b.Max.X, moved.Min.Y)
	case dy < 0:
		band = image.Rect(b.Min.X, moved.Max.Y, b.Max.X, b.Max.Y)
	}
	draw.Draw(c.img, band, image.Transparent, image.Point{}, draw.Src)
	return band
}
