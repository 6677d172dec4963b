package render

import "math/rand/v2"

// Permutation is a shuffled visiting order of all pixel indices of a grid.
// Index i addresses pixel (i%w, i/w).
type Permutation []int

// NewPermutation shuffles [0, n) with Fisher–Yates. A nil rng uses the
// global source.
func NewPermutation(n int, rng *rand.Rand) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
