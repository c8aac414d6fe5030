package view

import (
	"testing"

	"Espuma/internal/formulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Transitions(t *testing.T) {
	reg := formulation.Default()

	m := New()
	assert.Equal(t, EnteringInputs, m.State)
	assert.Empty(t, m.Selected)

	m = m.Select(reg, formulation.Alexandrina)
	assert.Equal(t, EnteringInputs, m.State)
	assert.Equal(t, formulation.Alexandrina, m.Selected)

	shown := m.Submit(reg, map[string]string{"volume": "1776", "fator": "1", "other": "x"})
	assert.Equal(t, ShowingResult, shown.State)
	require.NotNil(t, shown.Result)
	assert.True(t, shown.Result.OK)
	assert.Equal(t, map[string]string{"volume": "1776", "fator": "1"}, shown.Values)
	// the receiver is unchanged
	assert.Equal(t, EnteringInputs, m.State)

	// selecting while the result is shown does nothing
	assert.Equal(t, shown, shown.Select(reg, formulation.Bernardina))
	assert.Equal(t, shown, shown.Submit(reg, nil))

	assert.Equal(t, New(), shown.Reset())
}

func TestModel_SubmitWithoutSelectionIsNoop(t *testing.T) {
	reg := formulation.Default()
	m := New()
	assert.Equal(t, m, m.Submit(reg, map[string]string{"volume": "1", "fator": "1"}))

	m = m.Select(reg, "espumaCarolina")
	assert.Empty(t, m.Selected)
	assert.Equal(t, EnteringInputs, m.Submit(reg, nil).State)
}

func TestModel_SubmitInvalidInputShowsError(t *testing.T) {
	reg := formulation.Default()
	m := New().Select(reg, formulation.Bernardina).Submit(reg, map[string]string{"volume": "-10", "fator": "2"})

	assert.Equal(t, ShowingResult, m.State)
	require.NotNil(t, m.Result)
	assert.False(t, m.Result.OK)
	assert.Equal(t, "Erro: Os valores devem ser positivos e maiores que zero.", m.Result.Message)
}

func TestModel_SelectClearsValues(t *testing.T) {
	reg := formulation.Default()
	m := Model{State: EnteringInputs, Selected: formulation.Alexandrina, Values: map[string]string{"volume": "3"}}
	m = m.Select(reg, formulation.Bernardina)
	assert.Nil(t, m.Values)
	assert.Equal(t, formulation.Bernardina, m.Selected)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "EnteringInputs", EnteringInputs.String())
	assert.Equal(t, "ShowingResult", ShowingResult.String())
	assert.Equal(t, "Unknown", State(9).String())
}
