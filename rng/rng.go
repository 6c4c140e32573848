// Package rng provides the seedable uniform random source used by the SSA
// engine to draw the two independent uniforms each Gillespie step needs.
package rng

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source draws independent, identically distributed uniform variates on the
// half-open interval (0,1]. A zero draw is rejected and redrawn so that
// -log(u) never diverges.
type Source struct {
	dist distuv.Uniform
}

// New returns a Source seeded deterministically: the same seed always
// produces the same sequence of draws, which is what makes a simulation run
// reproducible.
func New(seed int64) *Source {
	return &Source{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.New(rand.NewSource(uint64(seed))),
		},
	}
}

// Uniform01 returns one draw from (0,1].
func (s *Source) Uniform01() float64 {
	for {
		u := 1 - s.dist.Rand()
		if u > 0 {
			return u
		}
	}
}
