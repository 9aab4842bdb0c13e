package service

import (
	"fmt"
	"strconv"
	"time"

	"stipendtriage/internal/model"
)

const (
	amountThreshold = 1000
	minimumAge      = 18

	dateOfBirthLayout = "2006-01-02"
)

// CalculateAge returns whole years between dateOfBirth and now, using
// calendar month/day comparison rather than elapsed-time division so leap
// years don't drift the result. A birthday falling exactly on now counts as
// already reached. Future dates of birth yield zero or negative ages; callers
// validate plausibility upstream.
func CalculateAge(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// A triageRule inspects one aspect of an application and returns the risk
// flags it raises, or nil. Rules never suppress one another.
type triageRule func(app model.Application, now time.Time) []string

// Evaluation order is fixed: amount, age, then SSN pattern flags.
var triageRules = []triageRule{
	amountRule,
	ageRule,
	ssnRule,
}

// Triage applies the business rules to a validated application and classifies
// it into a review tier. It is pure: the same application and reference
// instant always produce the same result, and it never fails.
func Triage(app model.Application, now time.Time) model.TriageResult {
	riskFlags := []string{}
	for _, rule := range triageRules {
		riskFlags = append(riskFlags, rule(app, now)...)
	}

	tier := model.TierStandard
	if len(riskFlags) > 0 {
		tier = model.TierManualReview
	}

	return model.TriageResult{ReviewTier: tier, RiskFlags: riskFlags}
}

func amountRule(app model.Application, _ time.Time) []string {
	if app.AmountRequested <= amountThreshold {
		return nil
	}
	amount := strconv.FormatFloat(app.AmountRequested, 'f', -1, 64)
	return []string{fmt.Sprintf("Amount requested ($%s) exceeds $%d threshold", amount, amountThreshold)}
}

func ageRule(app model.Application, now time.Time) []string {
	dob, err := time.Parse(dateOfBirthLayout, app.DateOfBirth)
	if err != nil {
		// Upstream validation guarantees a parseable date; an unparseable one
		// leaves nothing to evaluate.
		return nil
	}
	age := CalculateAge(dob, now)
	if age >= minimumAge {
		return nil
	}
	return []string{fmt.Sprintf("Applicant is under %d years old (age: %d)", minimumAge, age)}
}

func ssnRule(app model.Application, _ time.Time) []string {
	result := ValidateSSN(app.SSN)
	if result.IsValid {
		return nil
	}
	return result.Flags
}
