package model

import "gonum.org/v1/gonum/mat"

// newGlycogenPhosphorylase builds the Glycogen Phosphorylase descriptor: a
// two-state conservation system whose forward rate has Hill activation in
// Ca^4 and whose reverse rate is modulated by a fixed glucose concentration.
func newGlycogenPhosphorylase() Descriptor {
	return Descriptor{
		Name:          GlycogenPhosphorylase,
		Species:       []string{"Prot_inact", "Prot_act"},
		DefaultVolume: 5e-14,
		DefaultInitConc: map[string]float64{
			"Prot_inact": 5,
			"Prot_act":   0,
		},
		DefaultParams: map[string]float64{
			"VpM1":     1.5, // min^-1
			"VpM2":     0.6, // min^-1
			"alpha":    9,
			"gamma":    9,
			"K11":      0.1,
			"Kp2":      0.2,
			"Ka1_conc": 1e7,
			"Ka2_conc": 1e7,
			"Ka5_conc": 500,
			"Ka6_conc": 500,
			"gluc_conc": 1e7, // fixed at 10 mM per Gall 2000
		},
		Stoichiometry: mat.NewDense(2, 2, []float64{
			-1, 1,
			1, -1,
		}),
		CumulativePropensities: glycphosPropensities,
	}
}

func glycphosPropensities(p map[string]float64, x []float64, ca float64) []float64 {
	vpM1, vpM2 := p["VpM1"], p["VpM2"]
	alpha, gamma := p["alpha"], p["gamma"]
	k11, kp2 := p["K11"], p["Kp2"]
	ka1, ka2, ka5, ka6 := p["Ka1_conc"], p["Ka2_conc"], p["Ka5_conc"], p["Ka6_conc"]
	gluc := p["gluc_conc"]

	total := x[0] + x[1]
	activeFraction := x[1] / total

	ca4 := ca * ca * ca * ca
	ka5_4 := ka5 * ka5 * ka5 * ka5
	ka6_4 := ka6 * ka6 * ka6 * ka6

	amu := make([]float64, 2)
	// VpM1/VpM2 are given in min^-1 and converted to s^-1 here.
	amu[0] = (vpM1 / 60.0 * (1.0 + gamma*ca4/(ka5_4+ca4)) * (1.0 - activeFraction)) /
		((k11/(1.0+ca4/ka6_4) + 1.0 - activeFraction)) * total
	amu[1] = amu[0] + ((vpM2/60.0*(1.0+alpha*gluc/(ka1+gluc))*activeFraction)/
		(kp2/(1+gluc/ka2)+activeFraction))*total
	return amu
}
