package mandel

import (
	"fmt"
	"math"
	"strconv"
)

// Algorithm selects the escape condition used by Escape.
// Values index the default view table, so new variants are appended, never inserted.
type Algorithm int

const (
	Normal  Algorithm = iota // |z|² < 8
	Spiky                    // re(z)·im(z) < 3
	Noodles                  // re(z)+im(z) > -3

	algorithmCount
)

// Algorithms returns every known variant in index order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, algorithmCount)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// Valid reports whether a is a known variant.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

func (a Algorithm) String() string {
	switch a {
	case Normal:
		return "normal"
	case Spiky:
		return "spiky"
	case Noodles:
		return "noodles"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts a variant name or its index.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if s == a.String() {
			return a, nil
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil || !Algorithm(i).Valid() {
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
	return Algorithm(i), nil
}

// bounded reports whether the orbit point (zr, zi) is still inside the variant's bound.
func (a Algorithm) bounded(zr, zi float64) bool {
	switch a {
	case Spiky:
		return zr*zi < 3
	case Noodles:
		return zr+zi > -3
	default:
		return zr*zr+zi*zi < 8
	}
}

// Escape iterates z = z² + c from z = c for c = re + im·i and returns the
// normalized escape time i/limit in (0,1).
// Points that do not escape within limit iterations return +Inf.
//
// A limit of 1 or less performs no iteration and is returned unchanged, so
// callers must tolerate a value outside (0,1) in that case.
func (a Algorithm) Escape(re, im float64, limit int) float64 {
	if limit <= 1 {
		return float64(limit)
	}
	i := 1
	for zr, zi := re, im; i < limit && a.bounded(zr, zi); i++ {
		zr, zi = zr*zr-zi*zi+re, 2*zr*zi+im
	}
	if i == limit {
		return math.Inf(1)
	}
	return float64(i) / float64(limit)
}

// Map linearly maps n from [srcLo, srcHi] onto [dstLo, dstHi].
// srcLo must differ from srcHi.
func Map(n, srcLo, srcHi, dstLo, dstHi float64) float64 {
	src := srcHi - srcLo
	return ((n-srcLo)*(dstHi-dstLo) + src*dstLo) / src
}
