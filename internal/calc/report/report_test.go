package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	reg := formulation.Default()
	def, _ := reg.Get(formulation.Alexandrina)

	for _, inputs := range []map[string]string{
		{"volume": "1776", "fator": "1"},
		{"volume": "abc", "fator": "1"},
	} {
		in := Input{Input: foam.Input{Formulation: formulation.Alexandrina, Inputs: inputs}, Project: "Molde 7", Author: "Joana"}
		res, err := foam.Calculate(reg, in.Input)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, in, def, res, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	}
}

func TestHandler_Generate(t *testing.T) {
	h := &Handler{Registry: formulation.Default()}
	body := `{"formulation":"espumaBernardina","inputs":{"volume":"1776","fator":"2"},"project":"Molde"}`

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "espumaBernardina.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestHandler_Generate_Errors(t *testing.T) {
	h := &Handler{Registry: formulation.Default()}
	cases := map[string]int{
		`{`: http.StatusBadRequest,
		`{"formulation":"espumaCarolina","inputs":{}}`: http.StatusNotFound,
		`{"inputs":{"volume":"1"}}`:                    http.StatusBadRequest,
	}
	for body, status := range cases {
		rec := httptest.NewRecorder()
		h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body)))
		assert.Equal(t, status, rec.Code, body)
	}
}
