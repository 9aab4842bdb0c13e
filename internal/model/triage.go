package model

// ReviewTier classifies how an application should be processed after triage.
type ReviewTier string

const (
	TierStandard     ReviewTier = "standard"
	TierManualReview ReviewTier = "manual_review"
)

// TriageResult is the outcome of running the business rules against one
// application. ReviewTier is manual_review exactly when RiskFlags is non-empty.
type TriageResult struct {
	ReviewTier ReviewTier `json:"reviewTier"`
	RiskFlags  []string   `json:"riskFlags"`
}

// SSNValidationResult reports which known-invalid patterns an SSN matched.
type SSNValidationResult struct {
	IsValid bool
	Flags   []string
}
