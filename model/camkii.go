package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// newCaMKII builds the CaMKII model descriptor: a 5-state cooperative
// autophosphorylation switch (W_I inactive, W_B CaM-bound, W_P
// autophosphorylated, W_T trapped, W_A autonomous) with 10 reactions.
func newCaMKII() Descriptor {
	return Descriptor{
		Name:          CaMKII,
		Species:       []string{"W_I", "W_B", "W_P", "W_T", "W_A"},
		DefaultVolume: 5e-15,
		DefaultInitConc: map[string]float64{
			"W_I": 40,
			"W_B": 0,
			"W_P": 0,
			"W_T": 0,
			"W_A": 0,
		},
		DefaultParams: map[string]float64{
			"a":       -0.22,
			"b":       1.826,
			"c":       0.1,
			"k_IB":    0.01,
			"k_BI":    0.8,
			"k_PT":    1,
			"k_TP":    1e-12,
			"k_TA":    0.0008,
			"k_AT":    0.01,
			"k_AA":    0.29,
			"c_B":     0.75,
			"c_P":     1,
			"c_T":     0.8,
			"c_A":     0.8,
			"camT":    1000,
			"Kd":      1000,
			"Vm_phos": 0.005,
			"Kd_phos": 0.3,
			"totalC":  40,
			"h":       4.0,
		},
		Stoichiometry: mat.NewDense(5, 10, []float64{
			-1, 1, 0, 0, 0, 0, 0, 0, 0, 1,
			1, -1, -1, 0, 0, 0, 0, 1, 1, 0,
			0, 0, 1, -1, 1, 0, 0, -1, 0, 0,
			0, 0, 0, 1, -1, -1, 1, 0, -1, 0,
			0, 0, 0, 0, 0, 1, -1, 0, 0, -1,
		}),
		CumulativePropensities: camkiiPropensities,
	}
}

func camkiiPropensities(p map[string]float64, x []float64, ca float64) []float64 {
	a, b, c := p["a"], p["b"], p["c"]
	kIB, kBI := p["k_IB"], p["k_BI"]
	kPT, kTP, kTA, kAT, kAA := p["k_PT"], p["k_TP"], p["k_TA"], p["k_AT"], p["k_AA"]
	cB, cP, cT, cA := p["c_B"], p["c_P"], p["c_T"], p["c_A"]
	camT, kd := p["camT"], p["Kd"]
	vmPhos, kdPhos := p["Vm_phos"], p["Kd_phos"]
	totalC, h := p["totalC"], p["h"]

	caH := math.Pow(ca, h)
	kdH := math.Pow(kd, h)

	amu := make([]float64, 10)
	amu[0] = x[0] * (kIB * camT * caH / (caH + kdH))
	amu[1] = amu[0] + kBI*x[1]

	activeSubunits := (x[1] + x[2] + x[3] + x[4]) / totalC
	prob := a*activeSubunits + b*activeSubunits*activeSubunits + c*activeSubunits*activeSubunits*activeSubunits
	amu[2] = amu[1] + totalC*kAA*prob*((cB*x[1])/(totalC*totalC))*(2*cB*x[1]+cP*x[2]+cT*x[3]+cA*x[4])

	amu[3] = amu[2] + kPT*x[2]
	amu[4] = amu[3] + kTP*x[3]*caH
	amu[5] = amu[4] + kTA*x[3]
	amu[6] = amu[5] + kAT*x[4]*(camT-(camT*caH/(caH+kdH)))
	amu[7] = amu[6] + (vmPhos*x[2])/(kdPhos+(x[2]/totalC))
	amu[8] = amu[7] + (vmPhos*x[3])/(kdPhos+(x[3]/totalC))
	amu[9] = amu[8] + (vmPhos*x[4])/(kdPhos+(x[4]/totalC))
	return amu
}
