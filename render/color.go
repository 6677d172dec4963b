package render

import (
	"image/color"
	"math"

	mandel "github.com/marben/mandel_view"
)

// Colorize turns a normalized escape value into a pixel.
//
// +Inf (not escaped) is fully transparent. Any other value is extrapolated
// onto [lo, hi] and then used as a hue fraction or as a multiplier of the
// base colour, depending on mode. Values outside (0,1] are not guarded.
func Colorize(value, lo, hi float64, mode mandel.ColorMode) color.RGBA {
	if math.IsInf(value, 1) {
		return color.RGBA{}
	}
	s := value*(hi-lo) + lo
	if !mode.Saturation {
		rgb := hueToRGB(s)
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
	}
	return color.RGBA{
		R: scaleChannel(mode.Base[0], s),
		G: scaleChannel(mode.Base[1], s),
		B: scaleChannel(mode.Base[2], s),
		A: 0xFF,
	}
}

// hueToRGB converts a hue fraction to RGB at full saturation and lightness.
// The hue wraps with period 1.
func hueToRGB(h float64) [3]uint8 {
	h = math.Mod(math.Mod(h, 1)+1, 1)
	var rgb [3]uint8
	for i, off := range [3]float64{1.0 / 3, 0, -1.0 / 3} {
		t := h + off
		switch {
		case t < 0:
			t++
		case t > 1:
			t--
		}
		var c float64
		switch {
		case t < 1.0/6:
			c = t * 0x5FA
		case t < 0.5:
			c = 0xFF
		case t < 2.0/3:
			c = (2.0/3 - t) * 0x5FA
		}
		rgb[i] = clampByte(c)
	}
	return rgb
}

// scaleChannel multiplies a channel and folds the result into [0,256).
func scaleChannel(base uint8, s float64) uint8 {
	m := math.Mod(float64(base)*s, 256)
	if m < 0 {
		m += 256
	}
	return uint8(int(math.Floor(m)))
}

func clampByte(f float64) uint8 {
	return uint8(math.Round(min(max(f, 0), 255)))
}
