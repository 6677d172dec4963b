package mandel

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidView is returned for view strings that do not match the view grammar.
var ErrInvalidView = errors.New("invalid view string")

const (
	numberPattern = `[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`
	intPattern    = `[+-]?\d+`
)

// algorithm:limit,color,cmin,cmax:xmin,xmax,ymin,ymax
var viewPattern = regexp.MustCompile(`^` +
	`(` + numberPattern + `)?:` +
	`(` + numberPattern + `)?,` +
	`(null|\[\s*(` + intPattern + `)\s*,\s*(` + intPattern + `)\s*,\s*(` + intPattern + `)\s*\])?,` +
	`(` + numberPattern + `)?,` +
	`(` + numberPattern + `)?:` +
	`(` + numberPattern + `)?,` +
	`(` + numberPattern + `)?,` +
	`(` + numberPattern + `)?,` +
	`(` + numberPattern + `)?$`)

// String encodes the view as
// "algorithm:limit,color,colorMin,colorMax:xmin,xmax,ymin,ymax",
// where color is "null" for hue mode or "[r,g,b]" for saturation mode.
func (v View) String() string {
	return fmt.Sprintf("%d:%d,%s,%s,%s:%s,%s,%s,%s",
		int(v.Algorithm), v.Limit, v.Color,
		formatFloat(v.ColorMin), formatFloat(v.ColorMax),
		formatFloat(v.Region.Xmin), formatFloat(v.Region.Xmax),
		formatFloat(v.Region.Ymin), formatFloat(v.Region.Ymax))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseView decodes a view string produced by View.String.
// Every field may be left empty; empty fields take the value from the
// default view of the parsed (or default) algorithm.
func ParseView(s string) (View, error) {
	m := viewPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return View{}, fmt.Errorf("%w: %q", ErrInvalidView, s)
	}

	algo := Normal
	if m[1] != "" {
		n, err := parseInteger(m[1])
		if err != nil || !Algorithm(n).Valid() {
			return View{}, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidView, m[1])
		}
		algo = Algorithm(n)
	}
	v := DefaultView(algo)

	if m[2] != "" {
		n, err := parseInteger(m[2])
		if err != nil || n < 1 {
			return View{}, fmt.Errorf("%w: iteration limit %q", ErrInvalidView, m[2])
		}
		v.Limit = n
	}

	switch {
	case m[3] == "null":
		v.Color = Hue
	case m[3] != "":
		var rgb [3]uint8
		for i, c := range m[4:7] {
			n, err := strconv.Atoi(c)
			if err != nil || n < 0 || n > 255 {
				return View{}, fmt.Errorf("%w: colour channel %q", ErrInvalidView, c)
			}
			rgb[i] = uint8(n)
		}
		v.Color = SaturationOf(rgb[0], rgb[1], rgb[2])
	}

	floats := []*float64{
		&v.ColorMin, &v.ColorMax,
		&v.Region.Xmin, &v.Region.Xmax, &v.Region.Ymin, &v.Region.Ymax,
	}
	for i, dst := range floats {
		tok := m[7+i]
		if tok == "" {
			continue
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return View{}, fmt.Errorf("%w: number %q: %w", ErrInvalidView, tok, err)
		}
		*dst = f
	}
	return v, nil
}

// parseInteger accepts any numeric literal that holds an integral value.
func parseInteger(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}
