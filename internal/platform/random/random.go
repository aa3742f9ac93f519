package random

import "math/rand/v2"

// Source draws uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

type System struct{}

func (System) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeeded returns a reproducible source, used by --seed and tests.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
