package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stipendtriage/internal/model"
	"stipendtriage/internal/service"
	"stipendtriage/internal/validation"
)

const maxSubmissionBody = 64 * 1024

// SubmitApplicationHandler validates an inbound submission, runs it through
// the triage pipeline, and returns the PII-free response payload.
func SubmitApplicationHandler(appSvc *service.ApplicationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var in model.ApplicationInput
		body := http.MaxBytesReader(w, r.Body, maxSubmissionBody)
		if err := json.NewDecoder(body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
			return
		}

		if errs := validation.ValidateInput(in); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Error:   "Validation failed",
				Details: errs,
			})
			return
		}

		resp, err := appSvc.Submit(r.Context(), in)
		if err != nil {
			// Never log the submission itself: it carries PII.
			slog.Error("application submission failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}
