package foam

import (
	"encoding/json"
	"net/http"

	"Espuma/internal/formulation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Registry *formulation.Registry
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Registry.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := formulation.ID(mux.Vars(r)["id"])
	def, ok := h.Registry.Get(id)
	if !ok {
		http.Error(w, "Formulation not found", http.StatusNotFound)
		return
	}
	WriteJSON(w, http.StatusOK, Describe(id, def))
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if id, ok := mux.Vars(r)["id"]; ok {
		input.Formulation = formulation.ID(id)
	}
	res, ok := Run(w, h.Registry, input)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// Run validates and calculates input. On failure it writes the HTTP error and
// returns false.
func Run(w http.ResponseWriter, reg *formulation.Registry, input Input) (Result, bool) {
	if _, ok := Lookup(w, reg, input); !ok {
		return Result{}, false
	}
	res, err := Calculate(reg, input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return Result{}, false
	}
	return res, true
}

// Lookup validates input and resolves its formulation without evaluating it.
// On failure it writes the HTTP error and returns false.
func Lookup(w http.ResponseWriter, reg *formulation.Registry, input Input) (formulation.Definition, bool) {
	if err := input.Validate(); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return formulation.Definition{}, false
	}
	def, ok := reg.Get(input.Formulation)
	if !ok {
		http.Error(w, "Formulation not found", http.StatusNotFound)
		return formulation.Definition{}, false
	}
	return def, true
}

// WriteJSON writes v as the JSON response body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		zap.S().Named("http").Errorw("encoding response", "error", err)
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
