package foam

import (
	"errors"
	"fmt"

	"Espuma/internal/formulation"
	"Espuma/internal/metrics"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var ErrUnknownFormulation = errors.New("unknown formulation")

var validate = validator.New()

type Input struct {
	Formulation formulation.ID    `json:"formulation" validate:"required"`
	Inputs      map[string]string `json:"inputs" validate:"required"`
}

func (in Input) Validate() error {
	return validate.Struct(in)
}

type Result struct {
	Formulation formulation.ID      `json:"formulation"`
	Name        string              `json:"name"`
	OK          bool                `json:"ok"`
	Outcome     string              `json:"outcome"`
	Message     string              `json:"message"`
	Masses      *formulation.Masses `json:"masses,omitempty"`
}

// Calculate runs one calculation. Invalid form values are reported in the
// Result; the error is only set when the formulation does not exist.
func Calculate(reg *formulation.Registry, in Input) (Result, error) {
	def, ok := reg.Get(in.Formulation)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormulation, in.Formulation)
	}

	m, err := def.Evaluate(in.Inputs)
	outcome := formulation.Outcome(err)
	metrics.IncreaseCalculationsTotalMetric(string(in.Formulation), outcome)

	res := Result{
		Formulation: in.Formulation,
		Name:        def.Name,
		OK:          err == nil,
		Outcome:     outcome,
		Message:     def.Text(m, err),
	}
	if err != nil {
		log := zap.S().Named("calc")
		if outcome == "unexpected" {
			log.Errorw("formula failed", "formulation", in.Formulation, "error", err)
		} else {
			log.Debugw("rejected inputs", "formulation", in.Formulation, "error", err)
		}
		return res, nil
	}
	res.Masses = &m
	return res, nil
}

// Variable describes one form field of a formulation.
type Variable struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

type Details struct {
	ID        formulation.ID `json:"id"`
	Name      string         `json:"name"`
	Variables []Variable     `json:"variables"`
}

// Describe lists the form fields of a formulation in collection order.
func Describe(id formulation.ID, def formulation.Definition) Details {
	d := Details{ID: id, Name: def.Name, Variables: make([]Variable, 0, len(def.Variables))}
	for _, v := range def.Variables {
		d.Variables = append(d.Variables, Variable{Name: v, Label: def.Label(v), Placeholder: def.Placeholder(v)})
	}
	return d
}
