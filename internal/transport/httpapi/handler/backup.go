package handler

import (
	"encoding/json"
	"net/http"

	"github.com/odalys-dev/pennybook/internal/backup"
)

// BackupHandler serves encrypted export and import.
type BackupHandler struct {
	service *backup.Service
}

// NewBackupHandler creates a new backup handler.
func NewBackupHandler(service *backup.Service) *BackupHandler {
	return &BackupHandler{service: service}
}

// ExportRequest carries the export password. The password is used for key
// derivation only and never stored or logged.
type ExportRequest struct {
	Password string `json:"password"`
}

// ImportRequest carries the password and the export file contents.
type ImportRequest struct {
	Password string          `json:"password"`
	Blob     json.RawMessage `json:"blob"`
}

// Export handles POST /export
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	blob, err := h.service.Export(r.Context(), req.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="pennybook-export.json"`)
	respondJSON(w, http.StatusOK, blob)
}

// Import handles POST /import
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Blob) == 0 {
		respondError(w, http.StatusBadRequest, "blob is required")
		return
	}

	result, err := h.service.Import(r.Context(), req.Blob, req.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
