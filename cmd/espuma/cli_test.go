package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Espuma Alexandrina")
	assert.Contains(t, out, "Espuma Bernardina")
	assert.Contains(t, out, "--set volume=<Volume do Molde>")
}

func TestCalc_Flags(t *testing.T) {
	out, err := run("calc", "espumaAlexandrina", "--volume", "1776", "--fator", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1000.00g")
	assert.Contains(t, out, "40.00g")
	assert.Contains(t, out, "1110.00g")
}

func TestCalc_Set(t *testing.T) {
	out, err := run("calc", "espumaBernardina", "--set", "volume=1776", "--set", "fator=2")
	require.NoError(t, err)
	assert.Contains(t, out, "485.00g")
}

func TestCalc_Rejected(t *testing.T) {
	out, err := run("calc", "espumaBernardina", "--volume", "-10", "--fator", "2")
	assert.ErrorIs(t, err, errCalculation)
	assert.Contains(t, out, "Erro: Os valores devem ser positivos e maiores que zero.")

	out, err = run("calc", "espumaBernardina", "--fator", "2")
	assert.ErrorIs(t, err, errCalculation)
	assert.Contains(t, out, "Erro: Volume e Fator de Expansão devem ser números.")
}

func TestCalc_Invalid(t *testing.T) {
	_, err := run("calc", "espumaCarolina", "--volume", "1", "--fator", "1")
	assert.Error(t, err)

	_, err = run("calc", "espumaAlexandrina", "--set", "volume")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"formulacao", "volume", "fator"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Espuma Alexandrina", 1776, 1}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"espumaBernardina", 1776, 2}))
	path := filepath.Join(t.TempDir(), "lote.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := run("import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1110.00g")
	assert.Contains(t, out, "485.00g")
	assert.Contains(t, out, "2 itens, 0 com erro")
}
