package formulation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNumericFormat reports a required input that is not a finite number.
	ErrNumericFormat = errors.New("input is not a number")
	// ErrNonPositive reports a parsed input that is zero or negative.
	ErrNonPositive = errors.New("input must be greater than zero")
)

// UnexpectedError wraps a fault raised inside a Formula.
type UnexpectedError struct {
	Cause any
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprint(e.Cause)
}

// Evaluate validates the raw inputs and computes the masses.
//
// Every variable is checked for format before any is checked for range, so a
// non-numeric field always wins over a non-positive one. The returned error
// wraps ErrNumericFormat or ErrNonPositive, or is an *UnexpectedError.
// inputs is never modified.
func (d Definition) Evaluate(inputs map[string]string) (m Masses, err error) {
	values := make(map[string]float64, len(d.Variables))
	var malformed, nonPositive []string
	for _, name := range d.Variables {
		v, ok := parseFinite(inputs[name])
		if !ok {
			malformed = append(malformed, name)
			continue
		}
		if v <= 0 {
			nonPositive = append(nonPositive, name)
		}
		values[name] = v
	}
	if len(malformed) > 0 {
		return Masses{}, fmt.Errorf("%w: %s", ErrNumericFormat, strings.Join(malformed, ", "))
	}
	if len(nonPositive) > 0 {
		return Masses{}, fmt.Errorf("%w: %s", ErrNonPositive, strings.Join(nonPositive, ", "))
	}

	defer func() {
		if r := recover(); r != nil {
			m, err = Masses{}, &UnexpectedError{Cause: r}
		}
	}()
	m = d.Formula.Compute(values)
	if !m.finite() {
		return Masses{}, &UnexpectedError{Cause: errMassOutOfRange}
	}
	return m, nil
}

var errMassOutOfRange = errors.New("massa calculada fora do intervalo numérico")

func (m Masses) finite() bool {
	for _, v := range []float64{m.ComponentB, m.Water, m.ComponentA} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// parseFinite accepts decimal literals only; hex floats such as "0x1p4" are
// rejected.
func parseFinite(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	digits := strings.TrimLeft(raw, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
