package model

// SubmissionResponse is the payload returned to the submitter. It carries the
// triage outcome but none of the submitted PII.
type SubmissionResponse struct {
	ApplicationID string     `json:"applicationId"`
	ReviewTier    ReviewTier `json:"reviewTier"`
	RiskFlags     []string   `json:"riskFlags"`
	Message       string     `json:"message"`
}
