package model

import "gonum.org/v1/gonum/mat"

// newPKC builds the Protein Kinase C model descriptor: 11 species and 10
// reversible reaction pairs. AA (arachidonic acid) and DAG (diacylglycerol)
// enter the rate law as fixed concentrations, not as tracked species.
func newPKC() Descriptor {
	return Descriptor{
		Name:          PKC,
		Species: []string{
			"PKC_inact", "CaPKC", "DAGCaPKC", "AADAGPKC_inact", "AADAGPKC_act",
			"PKCbasal", "AAPKC", "CaPKCmemb", "AACaPKC", "DAGPKCmemb", "DAGPKC",
		},
		DefaultVolume: 1e-15,
		DefaultInitConc: map[string]float64{
			"PKC_inact":      1000,
			"CaPKC":          0,
			"DAGCaPKC":       0,
			"AADAGPKC_inact": 0,
			"AADAGPKC_act":   0,
			"PKCbasal":       20,
			"AAPKC":          0,
			"CaPKCmemb":      0,
			"AACaPKC":        0,
			"DAGPKCmemb":     0,
			"DAGPKC":         0,
		},
		DefaultParams: map[string]float64{
			"k1": 1, "k2": 50, "k3": 1.2e-7, "k4": 0.1, "k5": 1.2705,
			"k6": 3.5026, "k7": 1.2e-7, "k8": 0.1, "k9": 1, "k10": 0.1,
			"k11": 2, "k12": 0.2, "k13": 0.0006, "k14": 0.5, "k15": 7.998e-6,
			"k16": 8.6348, "k17": 6e-7, "k18": 0.1, "k19": 1.8e-5, "k20": 2,
			"AA": 11000, "DAG": 5000,
		},
		Stoichiometry: mat.NewDense(11, 20, []float64{
			-1, 1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, -1, 1, 0, 0, -1, 1, 0, 0,
			0, 0, 0, 0, -1, 1, -1, 1, 0, 0, 0, 0, 1, -1, -1, 1, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, -1, 1, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 1, 0, 0, 0, 0, 0, 0, 1, -1,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0,
			1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, -1, 1,
		}),
		CumulativePropensities: pkcPropensities,
	}
}

func pkcPropensities(p map[string]float64, x []float64, ca float64) []float64 {
	k := func(n string) float64 { return p[n] }
	aa, dag := p["AA"], p["DAG"]

	amu := make([]float64, 20)
	amu[0] = k("k1") * x[0]
	amu[1] = amu[0] + k("k2")*x[5]
	amu[2] = amu[1] + k("k3")*aa*x[0]
	amu[3] = amu[2] + k("k4")*x[6]
	amu[4] = amu[3] + k("k5")*x[1]
	amu[5] = amu[4] + k("k6")*x[7]
	amu[6] = amu[5] + k("k7")*aa*x[1]
	amu[7] = amu[6] + k("k8")*x[8]
	amu[8] = amu[7] + k("k9")*x[2]
	amu[9] = amu[8] + k("k10")*x[9]
	amu[10] = amu[9] + k("k11")*x[3]
	amu[11] = amu[10] + k("k12")*x[4]
	amu[12] = amu[11] + ca*k("k13")*x[0]
	amu[13] = amu[12] + k("k14")*x[1]
	amu[14] = amu[13] + k("k15")*dag*x[1]
	amu[15] = amu[14] + k("k16")*x[2]
	amu[16] = amu[15] + k("k17")*dag*x[0]
	amu[17] = amu[16] + k("k18")*x[10]
	amu[18] = amu[17] + k("k19")*aa*x[10]
	amu[19] = amu[18] + k("k20")*x[3]
	return amu
}
