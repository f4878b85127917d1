package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mattjh/shoplist/internal/settings"
)

type SettingsHandler struct {
	settings *settings.Service
}

func NewSettingsHandler(s *settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: s}
}

func (h *SettingsHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"language": h.settings.Language()})
}

func (h *SettingsHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !h.settings.SetLanguage(req.Language) {
		writeError(w, http.StatusBadRequest, "unsupported language")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"language": h.settings.Language()})
}

func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"theme": h.settings.Theme()})
}

func (h *SettingsHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !h.settings.SetTheme(req.Theme) {
		writeError(w, http.StatusBadRequest, "unsupported theme")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": h.settings.Theme()})
}
