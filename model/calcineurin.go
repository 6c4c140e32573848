package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// newCalcineurin builds the Calcineurin model descriptor (Fisher 2006): the
// same two-state conservation shape as Calmodulin, but with a power-law (not
// Hill) activation term in Ca.
//
// The original source for this model (calcineurin_model.cpp) does not list a
// default volume or default initial concentrations the way the other five
// models do - only default reaction parameters. Since Calcineurin is
// structurally the same two-state conservation system as Calmodulin, this
// descriptor reuses Calmodulin's vol/init_conc defaults.
func newCalcineurin() Descriptor {
	return Descriptor{
		Name:          Calcineurin,
		Species:       []string{"Prot_inact", "Prot_act"},
		DefaultVolume: 5e-14,
		DefaultInitConc: map[string]float64{
			"Prot_inact": 5,
			"Prot_act":   0,
		},
		DefaultParams: map[string]float64{
			"k_on":  1,
			"k_off": 1,
			"p":     3.0,
		},
		Stoichiometry: mat.NewDense(2, 2, []float64{
			-1, 1,
			1, -1,
		}),
		CumulativePropensities: calcineurinPropensities,
	}
}

func calcineurinPropensities(p map[string]float64, x []float64, ca float64) []float64 {
	kOn, kOff, power := p["k_on"], p["k_off"], p["p"]
	amu := make([]float64, 2)
	amu[0] = kOn * math.Pow(ca, power) * x[0]
	amu[1] = amu[0] + kOff*x[1]
	return amu
}
