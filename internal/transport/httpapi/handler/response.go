package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, ErrorResponse{Error: message})
}

// respondAppError maps the application error taxonomy onto HTTP statuses.
func respondAppError(w http.ResponseWriter, err error) {
	code := apperrors.Code(err)
	message := "internal error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeValidation, apperrors.CodeFormat, apperrors.CodeBadRequest:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeDecryption:
		// Deliberately vague: wrong password and corrupt file look the same.
		status = http.StatusUnprocessableEntity
	default:
		message = "internal error"
	}

	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}
