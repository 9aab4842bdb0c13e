package handler

import (
	"log/slog"
	"net/http"

	"stipendtriage/internal/model"
	"stipendtriage/internal/service"
)

type listingCounts struct {
	Applications   int `json:"applications"`
	HandoffRecords int `json:"handoffRecords"`
}

type listingResponse struct {
	Message        string                `json:"message"`
	Counts         listingCounts         `json:"counts"`
	Applications   []model.Application   `json:"applications"`
	HandoffRecords []model.HandoffRecord `json:"handoffRecords"`
}

// AdminApplicationsHandler lists stored applications and handoff records for
// review. SSNs are masked before anything leaves the process.
func AdminApplicationsHandler(appSvc *service.ApplicationService) http.HandlerFunc {
	return listingHandler(appSvc, "Admin view - stored applications and handoff records")
}

// InternalDataHandler is the development-only view of stored data. Same
// masking discipline as the admin listing.
func InternalDataHandler(appSvc *service.ApplicationService) http.HandlerFunc {
	return listingHandler(appSvc, "Debug view - stored data")
}

func listingHandler(appSvc *service.ApplicationService, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		apps, err := appSvc.ListApplications(r.Context())
		if err != nil {
			slog.Error("failed to list applications", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
			return
		}

		masked := make([]model.Application, len(apps))
		for i, app := range apps {
			app.SSN = service.MaskSSN(app.SSN)
			masked[i] = app
		}

		records, err := appSvc.ListHandoffRecords(r.Context())
		if err != nil {
			slog.Error("failed to list handoff records", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, listingResponse{
			Message: message,
			Counts: listingCounts{
				Applications:   len(masked),
				HandoffRecords: len(records),
			},
			Applications:   masked,
			HandoffRecords: records,
		})
	}
}
