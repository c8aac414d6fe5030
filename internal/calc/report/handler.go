package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"go.uber.org/zap"
)

type Handler struct {
	Registry *formulation.Registry
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, ok := foam.Run(w, h.Registry, input.Input)
	if !ok {
		return
	}
	def, _ := h.Registry.Get(input.Formulation)

	var buf bytes.Buffer
	if err := Render(&buf, input, def, res, time.Now()); err != nil {
		zap.S().Named("report").Errorw("rendering report", "formulation", input.Formulation, "error", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+string(input.Formulation)+".pdf\"")
	w.Write(buf.Bytes())
}
