package model

import "time"

// HandoffRecord is the PII-minimized projection of an application shared with
// downstream consumers. It must never carry the SSN, date of birth, phone
// number, or any address field.
type HandoffRecord struct {
	ApplicationID   string     `json:"applicationId"`
	ApplicantName   string     `json:"applicantName"`
	Email           string     `json:"email"`
	ProgramName     string     `json:"programName"`
	AmountRequested float64    `json:"amountRequested"`
	ReviewTier      ReviewTier `json:"reviewTier"`
	RiskFlags       []string   `json:"riskFlags"`
	SubmittedAt     time.Time  `json:"submittedAt"`
}
