package mandel

import "sort"

// Region is the window of the complex plane mapped onto the pixel grid.
// X runs along the real axis, Y along the imaginary axis.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Dx is the span of the real axis.
func (r Region) Dx() float64 { return r.Xmax - r.Xmin }

// Dy is the span of the imaginary axis.
func (r Region) Dy() float64 { return r.Ymax - r.Ymin }

// Empty reports whether the region has zero width or height.
// Empty regions are never rendered.
func (r Region) Empty() bool {
	return r.Xmin == r.Xmax || r.Ymin == r.Ymax
}

// Center returns the midpoint of the region.
func (r Region) Center() (x, y float64) {
	return (r.Xmin + r.Xmax) / 2, (r.Ymin + r.Ymax) / 2
}

// Canon returns r with min/max ordered on both axes.
func (r Region) Canon() Region {
	if r.Xmin > r.Xmax {
		r.Xmin, r.Xmax = r.Xmax, r.Xmin
	}
	if r.Ymin > r.Ymax {
		r.Ymin, r.Ymax = r.Ymax, r.Ymin
	}
	return r
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

var landmarks = map[string]Region{
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"mini-spiral":   MinibrotInMiniSpiral,
}

// Landmark looks up a named landmark region.
func Landmark(name string) (Region, bool) {
	r, ok := landmarks[name]
	return r, ok
}

// LandmarkNames lists the known landmark names in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
