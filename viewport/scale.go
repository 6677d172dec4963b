package viewport

import (
	"image"
	"math"
)

// ScaleToWindow fits a width×height box into window, keeping the box's
// aspect ratio, and returns the fitted size.
//
// With invert set it returns the window's size in units of the box instead,
// i.e. how large a box would have to be to fill the window exactly. That is
// used to scale a selection drawn on screen to the final render size.
func ScaleToWindow(width, height float64, window image.Point, invert bool) (float64, float64) {
	ww, wh := float64(window.X), float64(window.Y)
	f := math.Min(ww/width, wh/height)
	if invert {
		return ww / f, wh / f
	}
	return width * f, height * f
}

// gridSize rounds a fitted size to whole pixels, at least one per axis.
func gridSize(w, h float64) (int, int) {
	return max(int(math.Round(w)), 1), max(int(math.Round(h)), 1)
}
