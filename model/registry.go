package model

// Names of the six registered reaction models, in catalog order.
const (
	Calmodulin          = "calmodulin"
	Calcineurin         = "calcineurin"
	CaMKII              = "camkii"
	PKC                 = "pkc"
	Ano1                = "ano1"
	GlycogenPhosphorylase = "glycphos"
)

var registry = map[string]func() Descriptor{
	Calmodulin:            newCalmodulin,
	Calcineurin:           newCalcineurin,
	CaMKII:                newCaMKII,
	PKC:                   newPKC,
	Ano1:                  newAno1,
	GlycogenPhosphorylase: newGlycogenPhosphorylase,
}

// Get looks up a model descriptor by name. It returns a fresh Descriptor
// value each call so callers never share mutable default maps.
func Get(name string) (Descriptor, bool) {
	ctor, ok := registry[name]
	if !ok {
		return Descriptor{}, false
	}
	return ctor(), true
}

// Names returns the registered model names in catalog order.
func Names() []string {
	return []string{Calmodulin, Calcineurin, CaMKII, PKC, Ano1, GlycogenPhosphorylase}
}
