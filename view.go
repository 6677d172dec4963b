package mandel

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode picks how a normalized escape value becomes a colour.
// The zero value is hue mode.
type ColorMode struct {
	Saturation bool     // false: hue rotation, true: scale Base by the saturation value
	Base       [3]uint8 // RGB base colour, used only in saturation mode
}

// Hue is the hue-rotation colour mode.
var Hue = ColorMode{}

// SaturationOf returns a saturation colour mode with the given base colour.
func SaturationOf(r, g, b uint8) ColorMode {
	return ColorMode{Saturation: true, Base: [3]uint8{r, g, b}}
}

// ParseColorMode reads "hue"/"null" or a hex colour such as "#ff8800".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "hue", "null":
		return Hue, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorMode{}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return SaturationOf(r, g, b), nil
}

func (c ColorMode) String() string {
	if !c.Saturation {
		return "null"
	}
	return fmt.Sprintf("[%d,%d,%d]", c.Base[0], c.Base[1], c.Base[2])
}

// View is everything needed to reproduce a rendered image.
type View struct {
	Algorithm Algorithm
	Limit     int // iteration limit, >= 1
	Color     ColorMode
	ColorMin  float64
	ColorMax  float64
	Region    Region
}

var defaultViews = [algorithmCount]View{
	Normal: {
		Algorithm: Normal,
		Limit:     200,
		Color:     Hue,
		ColorMin:  -1.3,
		ColorMax:  1.99,
		Region:    Region{Xmin: -2, Xmax: 0.6, Ymin: -1.3, Ymax: 1.3},
	},
	Spiky: {
		Algorithm: Spiky,
		Limit:     40,
		Color:     Hue,
		ColorMin:  0,
		ColorMax:  1,
		Region:    Region{Xmin: -2.2, Xmax: 1, Ymin: -1.6, Ymax: 1.6},
	},
	Noodles: {
		Algorithm: Noodles,
		Limit:     40,
		Color:     Hue,
		ColorMin:  2,
		ColorMax:  -8,
		Region:    Region{Xmin: -2.5, Xmax: 1.5, Ymin: -2, Ymax: 2},
	},
}

// DefaultView returns the default view for an algorithm.
// Unknown algorithms get the Normal defaults.
func DefaultView(a Algorithm) View {
	if !a.Valid() {
		return defaultViews[Normal]
	}
	return defaultViews[a]
}
