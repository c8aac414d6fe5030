package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"Espuma/internal/calc/batch"
	"Espuma/internal/formulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cellName, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Formulacao", "Volume", "Fator"},
		{"Espuma Alexandrina", 1776, 1},
		{},
		{"espumaBernardina", "1776", "2"},
		{"espumaCarolina", 1, 1},
		{"espumaBernardina", "abc"},
	})

	in, err := Read(formulation.Default(), buf)
	require.NoError(t, err)
	require.Len(t, in.Items, 4)

	assert.Equal(t, formulation.Alexandrina, in.Items[0].Formulation)
	assert.Equal(t, map[string]string{"volume": "1776", "fator": "1"}, in.Items[0].Inputs)
	assert.Equal(t, formulation.Bernardina, in.Items[1].Formulation)
	assert.Equal(t, formulation.ID("espumaCarolina"), in.Items[2].Formulation)
	assert.Equal(t, map[string]string{"volume": "abc", "fator": ""}, in.Items[3].Inputs)
}

func TestParseRows_Empty(t *testing.T) {
	_, err := ParseRows(formulation.Default(), nil)
	assert.ErrorIs(t, err, ErrEmptySheet)

	_, err = ParseRows(formulation.Default(), [][]string{{"formulacao", "volume"}, {" ", ""}})
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestRead_NotAWorkbook(t *testing.T) {
	_, err := Read(formulation.Default(), bytes.NewBufferString("volume,fator\n1,2\n"))
	assert.Error(t, err)
}

func TestHandler_Import(t *testing.T) {
	buf := workbook(t, [][]any{
		{"formulacao", "volume", "fator"},
		{"espumaAlexandrina", 1776, 1},
		{"espumaBernardina", -10, 2},
	})

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "lote.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h := &Handler{Registry: formulation.Default(), MaxUploadSize: 1 << 20}
	h.Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got batch.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, "Erro: Os valores devem ser positivos e maiores que zero.", got.Items[1].Result.Message)
}

func TestHandler_Import_MissingFile(t *testing.T) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{Registry: formulation.Default(), MaxUploadSize: 1 << 20}).Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
