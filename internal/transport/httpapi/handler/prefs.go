package handler

import (
	"encoding/json"
	"net/http"

	"github.com/odalys-dev/pennybook/internal/prefs"
)

// PrefsHandler serves the display preferences.
type PrefsHandler struct {
	service *prefs.Service
}

// NewPrefsHandler creates a new preferences handler.
func NewPrefsHandler(service *prefs.Service) *PrefsHandler {
	return &PrefsHandler{service: service}
}

// GetPreferences handles GET /preferences
func (h *PrefsHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Get(r.Context()))
}

// UpdatePreferences handles PUT /preferences
func (h *PrefsHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var p prefs.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Set(r.Context(), p); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}
