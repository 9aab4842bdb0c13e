package handler

import (
	"encoding/json"
	"net/http"

	"stipendtriage/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
