package model

import "testing"

func TestCatalogDimensions(t *testing.T) {
	cases := []struct {
		name         string
		numSpecies   int
		numReactions int
	}{
		{Calmodulin, 2, 2},
		{Calcineurin, 2, 2},
		{CaMKII, 5, 10},
		{PKC, 11, 20},
		{Ano1, 13, 40},
		{GlycogenPhosphorylase, 2, 2},
	}
	for _, tc := range cases {
		d, ok := Get(tc.name)
		if !ok {
			t.Fatalf("%s: not registered", tc.name)
		}
		if d.NumSpecies() != tc.numSpecies {
			t.Errorf("%s: NumSpecies() = %d, want %d", tc.name, d.NumSpecies(), tc.numSpecies)
		}
		if d.NumReactions() != tc.numReactions {
			t.Errorf("%s: NumReactions() = %d, want %d", tc.name, d.NumReactions(), tc.numReactions)
		}
		if len(d.DefaultInitConc) != tc.numSpecies {
			t.Errorf("%s: len(DefaultInitConc) = %d, want %d", tc.name, len(d.DefaultInitConc), tc.numSpecies)
		}
		r, cc := d.Stoichiometry.Dims()
		if r != tc.numSpecies || cc != tc.numReactions {
			t.Errorf("%s: stoichiometry dims = %dx%d, want %dx%d", tc.name, r, cc, tc.numSpecies, tc.numReactions)
		}
		if d.DefaultVolume <= 0 {
			t.Errorf("%s: DefaultVolume must be positive, got %v", tc.name, d.DefaultVolume)
		}
	}
}

func TestGetUnknownModel(t *testing.T) {
	if _, ok := Get("not-a-model"); ok {
		t.Fatal("expected unknown model name to return ok=false")
	}
}

func TestNamesMatchesRegistry(t *testing.T) {
	for _, n := range Names() {
		if _, ok := Get(n); !ok {
			t.Errorf("Names() returned %q, but Get(%q) failed", n, n)
		}
	}
}

func TestAno1ClExtHasZeroStoichiometry(t *testing.T) {
	d, _ := Get(Ano1)
	idx := d.SpeciesIndex("Cl_ext")
	if idx != 0 {
		t.Fatalf("expected Cl_ext at index 0, got %d", idx)
	}
	for j := 0; j < d.NumReactions(); j++ {
		if v := d.Stoichiometry.At(idx, j); v != 0 {
			t.Errorf("Cl_ext stoichiometry at reaction %d = %v, want 0", j, v)
		}
	}
}

func TestTwoStateStoichiometryIsConserving(t *testing.T) {
	for _, name := range []string{Calmodulin, Calcineurin, GlycogenPhosphorylase} {
		d, _ := Get(name)
		for j := 0; j < d.NumReactions(); j++ {
			sum := 0.0
			for i := 0; i < d.NumSpecies(); i++ {
				sum += d.Stoichiometry.At(i, j)
			}
			if sum != 0 {
				t.Errorf("%s: reaction %d does not conserve total species count (sum=%v)", name, j, sum)
			}
		}
	}
}
