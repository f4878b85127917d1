package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mattjh/shoplist/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationErrors returns the field→message map for inline
// display on the submitting form.
func writeValidationErrors(w http.ResponseWriter, errs validate.Errors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}
