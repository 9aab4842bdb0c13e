package model

import "time"

// ApplicationInput is the submitted form payload, before the system assigns
// an ID and timestamp. Field names match the external JSON contract.
type ApplicationInput struct {
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	DateOfBirth       string  `json:"dateOfBirth"` // YYYY-MM-DD
	SSN               string  `json:"ssn"`
	AddressLine1      string  `json:"addressLine1"`
	AddressLine2      string  `json:"addressLine2,omitempty"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	ZipCode           string  `json:"zipCode"`
	ProgramName       string  `json:"programName"`
	AmountRequested   float64 `json:"amountRequested"`
	AgreementAccepted bool    `json:"agreementAccepted"`
}

// Application is a stored submission. ApplicationID is assigned exactly once
// at creation and the record is immutable afterward.
type Application struct {
	ApplicationInput
	ApplicationID string    `json:"applicationId"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
