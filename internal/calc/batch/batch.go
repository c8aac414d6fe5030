package batch

import (
	"errors"
	"fmt"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"
)

var (
	ErrNoItems = errors.New("no items")
	ErrTooMany = errors.New("too many items")
)

type Input struct {
	Items []foam.Input `json:"items"`
}

// Item is the outcome for one input. Error is set instead of Result when the
// item itself could not be calculated, e.g. an unknown formulation.
type Item struct {
	Index  int          `json:"index"`
	Result *foam.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type Result struct {
	Count  int    `json:"count"`
	Failed int    `json:"failed"`
	Items  []Item `json:"items"`
}

// Calculate runs every item in order. A bad item does not stop the batch.
// max <= 0 means no limit.
func Calculate(reg *formulation.Registry, in Input, max int) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrNoItems
	}
	if max > 0 && len(in.Items) > max {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooMany, len(in.Items), max)
	}
	out := Result{Count: len(in.Items), Items: make([]Item, 0, len(in.Items))}
	for i, item := range in.Items {
		out.Items = append(out.Items, calculateItem(reg, i, item))
	}
	for _, item := range out.Items {
		if item.Result == nil || !item.Result.OK {
			out.Failed++
		}
	}
	return out, nil
}

func calculateItem(reg *formulation.Registry, i int, in foam.Input) Item {
	if in.Inputs == nil {
		in.Inputs = map[string]string{}
	}
	if err := in.Validate(); err != nil {
		return Item{Index: i, Error: "invalid item"}
	}
	res, err := foam.Calculate(reg, in)
	if err != nil {
		return Item{Index: i, Error: err.Error()}
	}
	return Item{Index: i, Result: &res}
}
