// Package formulation holds the foam formulations and the calculation engine.
//
// A Registry maps an ID to a Definition. Definition.Evaluate parses and validates
// the raw form inputs and delegates to the Formula; Definition.Text renders the
// outcome for display.
package formulation
