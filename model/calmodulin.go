package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// newCalmodulin builds the Calmodulin model descriptor: a two-state
// conservation system (Prot_inact <-> Prot_act) with Hill activation in Ca
// and first-order deactivation.
func newCalmodulin() Descriptor {
	return Descriptor{
		Name:          Calmodulin,
		Species:       []string{"Prot_inact", "Prot_act"},
		DefaultVolume: 5e-14,
		DefaultInitConc: map[string]float64{
			"Prot_inact": 5,
			"Prot_act":   0,
		},
		DefaultParams: map[string]float64{
			"k_on":  0.025,
			"k_off": 0.005,
			"Km":    1.0,
			"h":     4.0,
		},
		Stoichiometry: mat.NewDense(2, 2, []float64{
			-1, 1,
			1, -1,
		}),
		CumulativePropensities: calmodulinPropensities,
	}
}

func calmodulinPropensities(p map[string]float64, x []float64, ca float64) []float64 {
	kOn, kOff, km, h := p["k_on"], p["k_off"], p["Km"], p["h"]
	amu := make([]float64, 2)
	amu[0] = (kOn * math.Pow(ca, h) / (math.Pow(km, h) + math.Pow(ca, h))) * x[0]
	amu[1] = amu[0] + kOff*x[1]
	return amu
}
