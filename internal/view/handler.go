package view

import (
	"embed"
	"html/template"
	"net/http"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var page = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type Handler struct {
	Registry *formulation.Registry
}

type pageData struct {
	Model        Model
	Formulations []formulation.Entry
	Details      *foam.Details
	Lines        []formulation.Line
}

// Form shows the input view. ?tipo=<id> selects a formulation.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	m := New().Select(h.Registry, formulation.ID(r.URL.Query().Get("tipo")))
	h.render(w, m)
}

// Submit calculates and shows the result view.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	m := New().Select(h.Registry, formulation.ID(r.PostForm.Get("tipo")))
	values := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		values[k] = r.PostForm.Get(k)
	}
	h.render(w, m.Submit(h.Registry, values))
}

// Reset returns to the empty form.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, m Model) {
	data := pageData{Model: m, Formulations: h.Registry.List()}
	if def, ok := m.Definition(h.Registry); ok {
		d := foam.Describe(m.Selected, def)
		data.Details = &d
	}
	if m.Result != nil && m.Result.Masses != nil {
		data.Lines = formulation.Lines(*m.Result.Masses)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		zap.S().Named("view").Errorw("rendering page", "state", m.State, "error", err)
	}
}
