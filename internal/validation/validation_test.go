package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stipendtriage/internal/model"
)

func validInput() model.ApplicationInput {
	return model.ApplicationInput{
		FirstName:         "John",
		LastName:          "Doe",
		Email:             "john.doe@example.com",
		Phone:             "(555) 123-4567",
		DateOfBirth:       "1990-01-15",
		SSN:               "456-78-1234",
		AddressLine1:      "123 Main St",
		City:              "Springfield",
		State:             "IL",
		ZipCode:           "62701",
		ProgramName:       "Early Childhood Education Grant",
		AmountRequested:   500,
		AgreementAccepted: true,
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateInputAccepted(t *testing.T) {
	require.Empty(t, ValidateInput(validInput()))

	bare := validInput()
	bare.SSN = "456781234"
	require.Empty(t, ValidateInput(bare))
}

func TestValidateInputFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ApplicationInput)
		field  string
	}{
		{"missing first name", func(in *model.ApplicationInput) { in.FirstName = "" }, "firstName"},
		{"first name too long", func(in *model.ApplicationInput) { in.FirstName = strings.Repeat("a", 51) }, "firstName"},
		{"missing last name", func(in *model.ApplicationInput) { in.LastName = "" }, "lastName"},
		{"bad email", func(in *model.ApplicationInput) { in.Email = "not-an-email" }, "email"},
		{"phone with letters", func(in *model.ApplicationInput) { in.Phone = "555-CALL-NOW" }, "phone"},
		{"phone too short", func(in *model.ApplicationInput) { in.Phone = "555-1234" }, "phone"},
		{"bad date format", func(in *model.ApplicationInput) { in.DateOfBirth = "15/01/1990" }, "dateOfBirth"},
		{"impossible date", func(in *model.ApplicationInput) { in.DateOfBirth = "1990-13-45" }, "dateOfBirth"},
		{"bad ssn shape", func(in *model.ApplicationInput) { in.SSN = "45-678-1234" }, "ssn"},
		{"missing address", func(in *model.ApplicationInput) { in.AddressLine1 = "" }, "addressLine1"},
		{"address line 2 too long", func(in *model.ApplicationInput) { in.AddressLine2 = strings.Repeat("b", 101) }, "addressLine2"},
		{"missing city", func(in *model.ApplicationInput) { in.City = "" }, "city"},
		{"lowercase state", func(in *model.ApplicationInput) { in.State = "il" }, "state"},
		{"long state", func(in *model.ApplicationInput) { in.State = "ILL" }, "state"},
		{"short zip", func(in *model.ApplicationInput) { in.ZipCode = "6270" }, "zipCode"},
		{"missing program", func(in *model.ApplicationInput) { in.ProgramName = "" }, "programName"},
		{"zero amount", func(in *model.ApplicationInput) { in.AmountRequested = 0 }, "amountRequested"},
		{"negative amount", func(in *model.ApplicationInput) { in.AmountRequested = -10 }, "amountRequested"},
		{"amount over cap", func(in *model.ApplicationInput) { in.AmountRequested = 100001 }, "amountRequested"},
		{"agreement not accepted", func(in *model.ApplicationInput) { in.AgreementAccepted = false }, "agreementAccepted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := ValidateInput(in)
			require.NotEmpty(t, errs)
			require.Contains(t, fieldsOf(errs), tt.field)
		})
	}
}

func TestValidateInputAmountBoundaries(t *testing.T) {
	in := validInput()
	in.AmountRequested = 100000
	require.Empty(t, ValidateInput(in))

	in.AmountRequested = 0.01
	require.Empty(t, ValidateInput(in))
}

func TestValidateInputAccumulates(t *testing.T) {
	errs := ValidateInput(model.ApplicationInput{})
	// Every required field should be reported at once, not just the first.
	require.GreaterOrEqual(t, len(errs), 12)
}
