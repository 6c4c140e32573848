// Package model defines the reaction-model abstraction the SSA engine runs
// against, and the catalog of six calcium-activated signaling models it ships
// with.
package model

import "gonum.org/v1/gonum/mat"

// Descriptor fully describes one chemical reaction network: its species,
// its default parameters, and the function that turns a state vector and a
// calcium level into a cumulative propensity vector.
//
// CumulativePropensities must return a slice of length NumReactions() whose
// entries are non-decreasing, where entry i is the sum of the propensities
// of reactions 0..i. That cumulative form is what the SSA engine's reaction
// selection step expects.
type Descriptor struct {
	Name string

	// Species lists species names in state-vector order; Species[i] is the
	// name of x[i] and of DefaultInitConc's corresponding entry.
	Species []string

	// DefaultVolume is the reaction compartment volume in liters.
	DefaultVolume float64

	// DefaultParams maps reaction-parameter name to default value.
	DefaultParams map[string]float64

	// DefaultInitConc maps species name to its default initial concentration.
	DefaultInitConc map[string]float64

	// Stoichiometry is a NumSpecies() x NumReactions() matrix: column j is
	// the per-species change applied when reaction j fires.
	Stoichiometry *mat.Dense

	// CumulativePropensities computes the cumulative propensity vector given
	// the current particle counts x (length NumSpecies()), the current
	// merged parameter map, and the current calcium concentration.
	CumulativePropensities func(params map[string]float64, x []float64, ca float64) []float64
}

// NumSpecies returns the species count.
func (d Descriptor) NumSpecies() int { return len(d.Species) }

// NumReactions returns the reaction count, read off the stoichiometry matrix.
func (d Descriptor) NumReactions() int {
	_, c := d.Stoichiometry.Dims()
	return c
}

// SpeciesIndex returns the state-vector index of a species name, or -1 if
// the model has no such species.
func (d Descriptor) SpeciesIndex(name string) int {
	for i, s := range d.Species {
		if s == name {
			return i
		}
	}
	return -1
}
