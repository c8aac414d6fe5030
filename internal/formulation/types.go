package formulation

// ID identifies a formulation, e.g. "espumaAlexandrina".
type ID string

// Variable names shared by the foam formulations.
const (
	VarVolume = "volume"
	VarFator  = "fator"
)

// Masses are the component masses in grams, in order of addition.
type Masses struct {
	ComponentB float64 `json:"componente_b"`
	Water      float64 `json:"agua"`
	ComponentA float64 `json:"componente_a"`
}

// Formula computes masses from already validated, strictly positive values
// keyed by variable name.
type Formula interface {
	Compute(values map[string]float64) Masses
}

// FormulaFunc adapts a plain function to Formula.
type FormulaFunc func(values map[string]float64) Masses

func (f FormulaFunc) Compute(values map[string]float64) Masses { return f(values) }

// Definition describes one formulation: what to ask the user and how to compute.
type Definition struct {
	Name      string
	Variables []string
	Labels    map[string]string
	// Subject names the variables in the numeric-format error message.
	Subject      string
	Placeholders map[string]string
	Formula      Formula
}

// Label returns the prompt for a variable, falling back to its name.
func (d Definition) Label(name string) string {
	if l, ok := d.Labels[name]; ok {
		return l
	}
	return name
}

// Placeholder returns the input hint for a variable.
func (d Definition) Placeholder(name string) string {
	if p, ok := d.Placeholders[name]; ok {
		return p
	}
	return `Digite o valor de "` + name + `"`
}

// Entry is an (id, name) pair for presentation.
type Entry struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}
