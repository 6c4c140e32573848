package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	faradayConst = 96485.3329
	gasConst     = 8.3144598
)

// newAno1 builds the Ano1 voltage- and calcium-gated chloride channel
// descriptor: 13 species across a closed/open Markov scheme each further
// split by calcium- and chloride-bound substates, 40 reactions. Cl_ext is
// tracked as a species for bookkeeping but carries zero stoichiometry in
// every reaction: the model treats extracellular chloride as a fixed pool
// that neither gates state transitions away from nor is transitioned into,
// only appearing as a multiplicative factor in the forward chloride-binding
// propensities below.
func newAno1() Descriptor {
	return Descriptor{
		Name: Ano1,
		Species: []string{
			"Cl_ext", "C", "C_c", "C_1", "C_1c", "C_2", "C_2c",
			"O", "O_c", "O_1", "O_1c", "O_2", "O_2c",
		},
		DefaultVolume: 1e-11,
		DefaultInitConc: map[string]float64{
			"Cl_ext": 300,
			"C":      100,
			"C_c":    0, "C_1": 0, "C_1c": 0, "C_2": 0, "C_2c": 0,
			"O": 0, "O_c": 0, "O_1": 0, "O_1c": 0, "O_2": 0, "O_2c": 0,
		},
		DefaultParams: map[string]float64{
			"Vm": -0.06, "T": 293.15,
			"a1": 0.0077, "b1": 917.1288,
			"k01": 0.5979439, "k02": 2.853,
			"acl1": 1.8872, "bcl1": 5955.783,
			"kccl1": 1.143e-12, "kccl2": 0.0009,
			"kocl1": 1.1947e-06, "kocl2": 3.4987,
			"za1": 0, "zb1": 0.0064,
			"zk01": 0, "zk02": 0.1684,
			"zacl1": 0.1111, "zbcl1": 0.3291,
			"zkccl1": 0.1986, "zkccl2": 0.0427,
			"zkocl1": 0.6485, "zkocl2": 0.03,
			"l": 41.6411, "L": 0.6485,
			"m": 0.0102, "M": 0.0632,
			"h": 0.3367, "H": 14.2956,
		},
		Stoichiometry: mat.NewDense(13, 40, ano1Stoichiometry()),
		CumulativePropensities: ano1Propensities,
	}
}

func ano1Stoichiometry() []float64 {
	row := func(vs ...float64) []float64 { return vs }
	rows := [][]float64{
		row(make([]float64, 40)...), // Cl_ext: zero stoichiometry throughout
		row(-1, 1, -1, 1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		row(0, 0, 0, 0, 1, -1, -1, 1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		row(0, 0, 1, -1, 0, 0, 0, 0, 0, 0, -1, 1, -1, 1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		row(0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 1, -1, -1, 1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		row(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, -1, 1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		row(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 1, -1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		row(1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		row(0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0),
		row(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, -1, 1, -1, 1, 0, 0, 0, 0),
		row(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 1, -1, -1, 1, 0, 0),
		row(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, -1, 1),
		row(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 1, -1),
	}
	flat := make([]float64, 0, 13*40)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return flat
}

func ano1Propensities(p map[string]float64, x []float64, ca float64) []float64 {
	vm, t := p["Vm"], p["T"]
	a1, b1 := p["a1"], p["b1"]
	k01, k02 := p["k01"], p["k02"]
	acl1, bcl1 := p["acl1"], p["bcl1"]
	kccl1, kccl2 := p["kccl1"], p["kccl2"]
	kocl1, kocl2 := p["kocl1"], p["kocl2"]
	za1, zb1 := p["za1"], p["zb1"]
	zk01, zk02 := p["zk01"], p["zk02"]
	zacl1, zbcl1 := p["zacl1"], p["zbcl1"]
	zkccl1, zkccl2 := p["zkccl1"], p["zkccl2"]
	zkocl1, zkocl2 := p["zkocl1"], p["zkocl2"]
	l, bigL := p["l"], p["L"]
	m, bigM := p["m"], p["M"]
	h, bigH := p["h"], p["H"]

	vterm := faradayConst * vm / (gasConst * t)
	exp := math.Exp

	// x index: 0 Cl_ext, 1 C, 2 C_c, 3 C_1, 4 C_1c, 5 C_2, 6 C_2c,
	// 7 O, 8 O_c, 9 O_1, 10 O_1c, 11 O_2, 12 O_2c
	cl, c, cC, c1, c1c, c2, c2c := x[0], x[1], x[2], x[3], x[4], x[5], x[6]
	o, oc, o1, o1c, o2, o2c := x[7], x[8], x[9], x[10], x[11], x[12]

	amu := make([]float64, 40)
	amu[0] = a1 * exp(za1*vterm) * c
	amu[1] = amu[0] + b1*exp(-zb1*vterm)*o
	amu[2] = amu[1] + k01*exp(zk01*vterm)*2*ca*c
	amu[3] = amu[2] + l/bigL*k02*exp(-zk02*vterm)*c1
	amu[4] = amu[3] + kccl1*exp(zkccl1*vterm)*cl*c
	amu[5] = amu[4] + kccl2*exp(-zkccl2*vterm)*cC

	amu[6] = amu[5] + acl1*exp(zacl1*vterm)*cC
	amu[7] = amu[6] + bcl1*exp(-zbcl1*vterm)*oc
	amu[8] = amu[7] + h/bigH*k01*exp(zk01*vterm)*2*ca*cC
	amu[9] = amu[8] + l/bigL*k02*exp(-zk02*vterm)*c1c

	amu[10] = amu[9] + l*a1*exp(za1*vterm)*c1
	amu[11] = amu[10] + bigL*b1*exp(-zb1*vterm)*o1
	amu[12] = amu[11] + k01*exp(zk01*vterm)*ca*c1
	amu[13] = amu[12] + l/bigL*2*k02*exp(-zk02*vterm)*c2
	amu[14] = amu[13] + h*kccl1*exp(zkccl1*vterm)*cl*c1
	amu[15] = amu[14] + bigH*kccl2*exp(-zkccl2*vterm)*c1c

	amu[16] = amu[15] + bigH*m*l/bigM*acl1*exp(zacl1*vterm)*c1c
	amu[17] = amu[16] + h*bigL*bcl1*exp(-zbcl1*vterm)*o1c
	amu[18] = amu[17] + h/bigH*k01*exp(zk01*vterm)*ca*c1c
	amu[19] = amu[18] + l/bigL*2*k02*exp(-zk02*vterm)*c2c

	amu[20] = amu[19] + l*l*a1*exp(za1*vterm)*c2
	amu[21] = amu[20] + bigL*bigL*b1*exp(-zb1*vterm)*o2
	amu[22] = amu[21] + h*h*kccl1*exp(zkccl1*vterm)*cl*c2
	amu[23] = amu[22] + bigH*bigH*kccl2*exp(-zkccl2*vterm)*c2c

	amu[24] = amu[23] + bigH*m*l*l/(m*m)*acl1*exp(zacl1*vterm)*c2c
	amu[25] = amu[24] + h*h*bigL*bigL*bcl1*exp(-zbcl1*vterm)*o2c

	amu[26] = amu[25] + k01*exp(zk01*vterm)*2*ca*o
	amu[27] = amu[26] + k02*exp(-zk02*vterm)*o1
	amu[28] = amu[27] + kocl1*exp(zkocl1*vterm)*cl*o
	amu[29] = amu[28] + kocl2*exp(-zkocl2*vterm)*oc

	amu[30] = amu[29] + m/bigM*k01*exp(zk01*vterm)*2*ca*oc
	amu[31] = amu[30] + k02*exp(-zk02*vterm)*o1c

	amu[32] = amu[31] + k01*exp(zk01*vterm)*ca*o1
	amu[33] = amu[32] + 2*k02*exp(-zk02*vterm)*o2
	amu[34] = amu[33] + m*kocl1*exp(zkocl1*vterm)*cl*o1
	amu[35] = amu[34] + bigM*kocl2*exp(-zkocl1*vterm)*o1c

	amu[36] = amu[35] + m/bigM*k01*exp(zk01*vterm)*ca*o1c
	amu[37] = amu[36] + 2*k02*exp(-zk02*vterm)*o2c

	amu[38] = amu[37] + m*m*kocl1*exp(zkocl1*vterm)*cl*o2
	amu[39] = amu[38] + bigM*bigM*kocl2*exp(-zkocl1*vterm)*o2c
	return amu
}
