package formulation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	ErrorPrefix      = "Erro:"
	ResultHeader     = "Ordem de adição dos componentes:"
	nonPositiveText  = ErrorPrefix + " Os valores devem ser positivos e maiores que zero."
	unexpectedPrefix = "Ocorreu um erro inesperado: "
	componentBLabel  = "Componente B (Poliol)"
	waterLabel       = "Água"
	componentALabel  = "Componente A (Isocianato)"
	massUnit         = "g"
)

// Calculate evaluates inputs and renders the outcome as display text.
func (d Definition) Calculate(inputs map[string]string) string {
	m, err := d.Evaluate(inputs)
	return d.Text(m, err)
}

// Text renders an Evaluate outcome as the message shown to the user.
func (d Definition) Text(m Masses, err error) string {
	if err != nil {
		return d.ErrorText(err)
	}
	lines := []string{ResultHeader}
	for _, line := range Lines(m) {
		lines = append(lines, line.Label+": "+line.Value)
	}
	return strings.Join(lines, "\n")
}

// ErrorText renders a failed Evaluate outcome.
func (d Definition) ErrorText(err error) string {
	var unexpected *UnexpectedError
	switch {
	case errors.Is(err, ErrNumericFormat):
		return fmt.Sprintf("%s %s devem ser números.", ErrorPrefix, d.Subject)
	case errors.Is(err, ErrNonPositive):
		return nonPositiveText
	case errors.As(err, &unexpected):
		return unexpectedPrefix + unexpected.Error()
	default:
		return unexpectedPrefix + err.Error()
	}
}

// Line is one labelled, formatted mass.
type Line struct {
	Label string
	Value string
}

// Lines returns the masses in order of addition: B, water, A.
func Lines(m Masses) []Line {
	return []Line{
		{Label: componentBLabel, Value: FormatMass(m.ComponentB)},
		{Label: waterLabel, Value: FormatMass(m.Water)},
		{Label: componentALabel, Value: FormatMass(m.ComponentA)},
	}
}

// FormatMass formats grams with two decimals. The digits are the decimal
// nearest to the exact binary value; exact ties round to even.
func FormatMass(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + massUnit
}

// Outcome classifies an Evaluate error for metrics and APIs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNumericFormat):
		return "numeric_format"
	case errors.Is(err, ErrNonPositive):
		return "non_positive"
	default:
		return "unexpected"
	}
}
