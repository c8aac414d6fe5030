package batch

import (
	"encoding/json"
	"net/http"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"
)

type Handler struct {
	Registry *formulation.Registry
	MaxItems int
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(h.Registry, input, h.MaxItems)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	foam.WriteJSON(w, http.StatusOK, res)
}
