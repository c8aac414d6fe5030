package importer

import (
	"net/http"

	"Espuma/internal/calc/batch"
	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"go.uber.org/zap"
)

type Handler struct {
	Registry      *formulation.Registry
	MaxUploadSize int64
	MaxItems      int
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadSize)
	if err := r.ParseMultipartForm(h.MaxUploadSize); err != nil {
		http.Error(w, "File too big", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	input, err := Read(h.Registry, file)
	if err != nil {
		zap.S().Named("importer").Debugw("rejected workbook", "error", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	res, err := batch.Calculate(h.Registry, input, h.MaxItems)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	foam.WriteJSON(w, http.StatusOK, res)
}
