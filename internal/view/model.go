package view

import (
	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"
)

// State is the visible view of the form.
type State int

const (
	EnteringInputs State = iota
	ShowingResult
)

func (s State) String() string {
	switch s {
	case EnteringInputs:
		return "EnteringInputs"
	case ShowingResult:
		return "ShowingResult"
	default:
		return "Unknown"
	}
}

// Model is the form's view model. Transitions return a new Model and never
// modify the receiver.
type Model struct {
	State    State
	Selected formulation.ID
	Values   map[string]string
	Result   *foam.Result
}

// New starts with nothing selected and the input view visible.
func New() Model {
	return Model{State: EnteringInputs}
}

// Select chooses a formulation and clears entered values. Selecting while a
// result is shown is ignored; the user resets first. An empty or unknown id
// leaves no formulation selected.
func (m Model) Select(reg *formulation.Registry, id formulation.ID) Model {
	if m.State != EnteringInputs {
		return m
	}
	if _, ok := reg.Get(id); !ok {
		id = ""
	}
	return Model{State: EnteringInputs, Selected: id}
}

// Submit calculates with the entered values of the selected formulation's
// variables and shows the result. Without a selection it is a no-op.
func (m Model) Submit(reg *formulation.Registry, values map[string]string) Model {
	if m.State != EnteringInputs || m.Selected == "" {
		return m
	}
	def, ok := reg.Get(m.Selected)
	if !ok {
		return m
	}
	inputs := make(map[string]string, len(def.Variables))
	for _, v := range def.Variables {
		inputs[v] = values[v]
	}
	res, err := foam.Calculate(reg, foam.Input{Formulation: m.Selected, Inputs: inputs})
	if err != nil {
		return m
	}
	return Model{State: ShowingResult, Selected: m.Selected, Values: inputs, Result: &res}
}

// Reset returns to an empty input view.
func (m Model) Reset() Model {
	return New()
}

// Definition returns the selected formulation, if any.
func (m Model) Definition(reg *formulation.Registry) (formulation.Definition, bool) {
	if m.Selected == "" {
		return formulation.Definition{}, false
	}
	return reg.Get(m.Selected)
}
