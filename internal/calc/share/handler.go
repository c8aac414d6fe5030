package share

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"Espuma/internal/auth"
	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Link struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Handler issues and resolves share links. A link holds the request, not the
// result, so opening it recomputes with the current formulas.
type Handler struct {
	Registry *formulation.Registry
	Sharer   *auth.Sharer
	BaseURL  string
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input foam.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	def, ok := foam.Lookup(w, h.Registry, input)
	if !ok {
		return
	}

	inputs := make(map[string]string)
	for _, v := range def.Variables {
		inputs[v] = input.Inputs[v]
	}
	token, err := h.Sharer.Sign(input.Formulation, inputs)
	if err != nil {
		zap.S().Named("share").Errorw("signing share link", "error", err)
		http.Error(w, "Share error", http.StatusInternalServerError)
		return
	}
	foam.WriteJSON(w, http.StatusCreated, Link{Token: token, URL: h.linkURL(token)})
}

func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Sharer.Parse(mux.Vars(r)["token"])
	if err != nil {
		zap.S().Named("share").Debugw("rejected share link", "error", err)
		http.Error(w, "Invalid share link", http.StatusBadRequest)
		return
	}
	res, ok := foam.Run(w, h.Registry, foam.Input{Formulation: claims.Formulation, Inputs: claims.Inputs})
	if !ok {
		return
	}
	foam.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) linkURL(token string) string {
	return strings.TrimSuffix(h.BaseURL, "/") + "/api/share/" + url.PathEscape(token)
}
