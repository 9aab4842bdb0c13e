package service

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"stipendtriage/internal/model"
)

const maskedSSN = "***-**-****"

// MaskSSN reduces an SSN to a display-safe form showing only the last four
// digits. Anything that doesn't normalize to 9 characters is fully redacted.
func MaskSSN(ssn string) string {
	normalized := strings.ReplaceAll(ssn, "-", "")
	if len(normalized) != 9 {
		return maskedSSN
	}
	return "***-**-" + normalized[5:]
}

// GenerateApplicationID produces a unique identifier of the form
// APP-<timestamp>-<random>, matching the external ID contract.
func GenerateApplicationID(now time.Time) string {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	id := uuid.New()
	random := strings.ToUpper(hex.EncodeToString(id[:3]))
	return fmt.Sprintf("APP-%s-%s", timestamp, random)
}

// BuildHandoffRecord projects an application and its triage outcome into the
// minimal-PII record shared with downstream consumers. The SSN, date of
// birth, phone number, and address are deliberately absent, not masked.
func BuildHandoffRecord(app model.Application, triage model.TriageResult) model.HandoffRecord {
	return model.HandoffRecord{
		ApplicationID:   app.ApplicationID,
		ApplicantName:   app.FirstName + " " + app.LastName,
		Email:           app.Email,
		ProgramName:     app.ProgramName,
		AmountRequested: app.AmountRequested,
		ReviewTier:      triage.ReviewTier,
		RiskFlags:       triage.RiskFlags,
		SubmittedAt:     app.SubmittedAt,
	}
}
