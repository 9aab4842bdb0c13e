package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stipendtriage/internal/model"
)

// Reference instant used across triage tests so results are reproducible.
var testNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func testApplication() model.Application {
	return model.Application{
		ApplicationInput: model.ApplicationInput{
			FirstName:         "John",
			LastName:          "Doe",
			Email:             "john.doe@example.com",
			Phone:             "555-123-4567",
			DateOfBirth:       "1990-01-15",
			SSN:               "456-78-1234",
			AddressLine1:      "123 Main St",
			City:              "Springfield",
			State:             "IL",
			ZipCode:           "62701",
			ProgramName:       "Early Childhood Education Grant",
			AmountRequested:   500,
			AgreementAccepted: true,
		},
		ApplicationID: "APP-TEST-123",
		SubmittedAt:   testNow,
	}
}

func TestCalculateAge(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		now  time.Time
		want int
	}{
		{
			name: "birthday already passed this year",
			dob:  time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC),
			now:  testNow,
			want: 36,
		},
		{
			name: "birthday not yet reached this year",
			dob:  time.Date(1990, time.December, 1, 0, 0, 0, 0, time.UTC),
			now:  testNow,
			want: 35,
		},
		{
			name: "birthday exactly today",
			dob:  time.Date(2008, time.June, 15, 0, 0, 0, 0, time.UTC),
			now:  testNow,
			want: 18,
		},
		{
			name: "day before birthday",
			dob:  time.Date(2008, time.June, 16, 0, 0, 0, 0, time.UTC),
			now:  testNow,
			want: 17,
		},
		{
			name: "leap day birth on non-leap year",
			dob:  time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
			want: 21,
		},
		{
			name: "leap day birth after March 1",
			dob:  time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: 22,
		},
		{
			name: "future date of birth is not clamped",
			dob:  time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
			now:  testNow,
			want: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CalculateAge(tt.dob, tt.now))
		})
	}
}

func TestTriageAmountRule(t *testing.T) {
	t.Run("at threshold stays standard", func(t *testing.T) {
		app := testApplication()
		app.AmountRequested = 1000

		result := Triage(app, testNow)

		require.Equal(t, model.TierStandard, result.ReviewTier)
		require.Empty(t, result.RiskFlags)
	})

	t.Run("above threshold flags the exact amount", func(t *testing.T) {
		app := testApplication()
		app.AmountRequested = 1001

		result := Triage(app, testNow)

		require.Equal(t, model.TierManualReview, result.ReviewTier)
		require.Equal(t, []string{"Amount requested ($1001) exceeds $1000 threshold"}, result.RiskFlags)
	})

	t.Run("fractional amount renders without padding", func(t *testing.T) {
		app := testApplication()
		app.AmountRequested = 1500.5

		result := Triage(app, testNow)

		require.Equal(t, []string{"Amount requested ($1500.5) exceeds $1000 threshold"}, result.RiskFlags)
	})
}

func TestTriageAgeRule(t *testing.T) {
	t.Run("seventeen year old flagged", func(t *testing.T) {
		app := testApplication()
		app.DateOfBirth = "2008-06-16" // turns 18 tomorrow

		result := Triage(app, testNow)

		require.Equal(t, model.TierManualReview, result.ReviewTier)
		require.Equal(t, []string{"Applicant is under 18 years old (age: 17)"}, result.RiskFlags)
	})

	t.Run("eighteenth birthday today is standard", func(t *testing.T) {
		app := testApplication()
		app.DateOfBirth = "2008-06-15"

		result := Triage(app, testNow)

		require.Equal(t, model.TierStandard, result.ReviewTier)
		require.Empty(t, result.RiskFlags)
	})

	t.Run("adult is standard", func(t *testing.T) {
		app := testApplication()
		app.DateOfBirth = "1990-01-15"

		result := Triage(app, testNow)

		require.Empty(t, result.RiskFlags)
	})
}

func TestTriageSSNRule(t *testing.T) {
	app := testApplication()
	app.SSN = "666-00-0000"

	result := Triage(app, testNow)

	require.Equal(t, model.TierManualReview, result.ReviewTier)
	require.Equal(t, []string{
		"SSN area number 666 was never issued",
		"SSN group number (middle 2 digits) cannot be 00",
		"SSN serial number (last 4 digits) cannot be 0000",
	}, result.RiskFlags)
}

func TestTriageFlagOrder(t *testing.T) {
	// All three rules fire: amount first, then age, then every SSN flag.
	app := testApplication()
	app.AmountRequested = 5000
	app.DateOfBirth = "2016-06-15" // age 10
	app.SSN = "000-00-0000"

	result := Triage(app, testNow)

	require.Equal(t, model.TierManualReview, result.ReviewTier)
	require.Equal(t, []string{
		"Amount requested ($5000) exceeds $1000 threshold",
		"Applicant is under 18 years old (age: 10)",
		"SSN contains all identical digits",
		"SSN area number (first 3 digits) cannot be 000",
		"SSN group number (middle 2 digits) cannot be 00",
		"SSN serial number (last 4 digits) cannot be 0000",
	}, result.RiskFlags)
}

func TestTriageIdempotent(t *testing.T) {
	app := testApplication()
	app.AmountRequested = 2500
	app.SSN = "123-45-6789"

	first := Triage(app, testNow)
	second := Triage(app, testNow)

	require.Equal(t, first, second)
}

func TestTriageTierMatchesFlags(t *testing.T) {
	apps := []model.Application{
		testApplication(),
		func() model.Application { a := testApplication(); a.AmountRequested = 99999; return a }(),
		func() model.Application { a := testApplication(); a.SSN = "987-65-4321"; return a }(),
		func() model.Application { a := testApplication(); a.DateOfBirth = "2020-01-01"; return a }(),
	}

	for _, app := range apps {
		result := Triage(app, testNow)
		if len(result.RiskFlags) > 0 {
			require.Equal(t, model.TierManualReview, result.ReviewTier)
		} else {
			require.Equal(t, model.TierStandard, result.ReviewTier)
		}
	}
}

func TestTriageReverseSequentialSSN(t *testing.T) {
	app := testApplication()
	app.SSN = "987-65-4321"

	result := Triage(app, testNow)

	require.Equal(t, []string{"SSN is a reverse sequential pattern"}, result.RiskFlags)
}
