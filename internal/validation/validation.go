package validation

import (
	"net/mail"
	"regexp"
	"time"

	"stipendtriage/internal/model"
)

// FieldError describes one rejected field in an inbound submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	phonePattern = regexp.MustCompile(`^[\d\s\-()]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	ssnPattern   = regexp.MustCompile(`^(\d{3}-\d{2}-\d{4}|\d{9})$`)
	statePattern = regexp.MustCompile(`^[A-Z]{2}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}$`)
)

const maxAmount = 100000

// ValidateInput checks every field of a submission and returns all
// violations. An empty result means the input satisfies the preconditions the
// triage engine assumes.
func ValidateInput(in model.ApplicationInput) []FieldError {
	var errs []FieldError

	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if in.FirstName == "" {
		add("firstName", "First name is required")
	} else if len(in.FirstName) > 50 {
		add("firstName", "First name must be 50 characters or less")
	}

	if in.LastName == "" {
		add("lastName", "Last name is required")
	} else if len(in.LastName) > 50 {
		add("lastName", "Last name must be 50 characters or less")
	}

	if in.Email == "" {
		add("email", "Email is required")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		add("email", "Invalid email format")
	}

	switch {
	case in.Phone == "":
		add("phone", "Phone number is required")
	case !phonePattern.MatchString(in.Phone):
		add("phone", "Phone number can only contain digits, spaces, dashes, and parentheses")
	case digitCount(in.Phone) < 10:
		add("phone", "Phone number must be at least 10 digits")
	}

	switch {
	case in.DateOfBirth == "":
		add("dateOfBirth", "Date of birth is required")
	case !datePattern.MatchString(in.DateOfBirth):
		add("dateOfBirth", "Date of birth must be in YYYY-MM-DD format")
	default:
		if _, err := time.Parse("2006-01-02", in.DateOfBirth); err != nil {
			add("dateOfBirth", "Date of birth must be a valid calendar date")
		}
	}

	if in.SSN == "" {
		add("ssn", "Social Security Number is required")
	} else if !ssnPattern.MatchString(in.SSN) {
		add("ssn", "SSN must be in format XXX-XX-XXXX or XXXXXXXXX")
	}

	if in.AddressLine1 == "" {
		add("addressLine1", "Address is required")
	} else if len(in.AddressLine1) > 100 {
		add("addressLine1", "Address must be 100 characters or less")
	}

	if len(in.AddressLine2) > 100 {
		add("addressLine2", "Address line 2 must be 100 characters or less")
	}

	if in.City == "" {
		add("city", "City is required")
	} else if len(in.City) > 50 {
		add("city", "City must be 50 characters or less")
	}

	if in.State == "" {
		add("state", "State is required")
	} else if !statePattern.MatchString(in.State) {
		add("state", "State must be uppercase 2-letter code")
	}

	if in.ZipCode == "" {
		add("zipCode", "ZIP code is required")
	} else if !zipPattern.MatchString(in.ZipCode) {
		add("zipCode", "ZIP code must be 5 digits")
	}

	if in.ProgramName == "" {
		add("programName", "Program name is required")
	} else if len(in.ProgramName) > 100 {
		add("programName", "Program name must be 100 characters or less")
	}

	if in.AmountRequested <= 0 {
		add("amountRequested", "Amount must be greater than 0")
	} else if in.AmountRequested > maxAmount {
		add("amountRequested", "Amount cannot exceed $100,000")
	}

	if !in.AgreementAccepted {
		add("agreementAccepted", "You must accept the agreement")
	}

	return errs
}

func digitCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
