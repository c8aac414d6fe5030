package formulation

const (
	Alexandrina ID = "espumaAlexandrina"
	Bernardina  ID = "espumaBernardina"

	// BaseDensity converts mold volume per expansion factor into the mass of component B.
	BaseDensity = 1.776
)

// Compile-time assertion that Ratio implements the Formula interface.
var _ Formula = Ratio{}

// Ratio is the two-component foam formula: component B from volume and
// expansion factor, water and component A as fixed fractions of B.
type Ratio struct {
	A     float64
	Water float64
}

func (r Ratio) Compute(values map[string]float64) Masses {
	b := values[VarVolume] / (values[VarFator] * BaseDensity)
	return Masses{
		ComponentB: b,
		Water:      b * r.Water,
		ComponentA: b * r.A,
	}
}

func foam(name string, r Ratio) Definition {
	return Definition{
		Name:      name,
		Variables: []string{VarVolume, VarFator},
		Labels: map[string]string{
			VarVolume: "Volume do Molde",
			VarFator:  "Fator de Expansão",
		},
		Subject: "Volume e Fator de Expansão",
		Placeholders: map[string]string{
			VarVolume: "Insira o volume do molde em cm³",
			VarFator:  "Insira o fator de expansão",
		},
		Formula: r,
	}
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(Alexandrina, foam("Espuma Alexandrina", Ratio{A: 1.11, Water: 0.04}))
	r.Register(Bernardina, foam("Espuma Bernardina", Ratio{A: 0.97, Water: 0.02}))
	return r
}()

// Default returns the built-in registry. It must not be registered into.
func Default() *Registry { return defaultRegistry }
