package handler

import (
	"net/http"

	"github.com/mattjh/shoplist/internal/category"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type categoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	all := category.All()
	out := make([]categoryResponse, len(all))
	for i, c := range all {
		out[i] = categoryResponse{ID: c, Label: category.Label(c)}
	}
	writeJSON(w, http.StatusOK, out)
}

// Suggest guesses a category from an item name, for pre-filling the
// add-item form. It always answers; unknown names map to "other".
func (h *CategoryHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	writeJSON(w, http.StatusOK, map[string]string{"category": category.Suggest(name)})
}
