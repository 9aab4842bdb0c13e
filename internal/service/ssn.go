package service

import (
	"strconv"
	"strings"

	"stipendtriage/internal/model"
)

// ValidateSSN checks an SSN against the known-invalid issuance patterns.
// Input may be hyphen-grouped (XXX-XX-XXXX) or bare 9 digits. A malformed
// value short-circuits to a single format flag; otherwise every pattern check
// runs and the flags accumulate in a fixed order.
func ValidateSSN(ssn string) model.SSNValidationResult {
	normalized := strings.ReplaceAll(ssn, "-", "")

	if !isNineDigits(normalized) {
		return model.SSNValidationResult{IsValid: false, Flags: []string{"Invalid SSN format"}}
	}

	area := normalized[0:3]
	group := normalized[3:5]
	serial := normalized[5:9]

	var flags []string

	if allIdenticalDigits(normalized) {
		flags = append(flags, "SSN contains all identical digits")
	}
	if normalized == "123456789" {
		flags = append(flags, "SSN is a sequential pattern")
	}
	if normalized == "987654321" {
		flags = append(flags, "SSN is a reverse sequential pattern")
	}
	if area == "000" {
		flags = append(flags, "SSN area number (first 3 digits) cannot be 000")
	}
	if area == "666" {
		flags = append(flags, "SSN area number 666 was never issued")
	}
	if areaNum, _ := strconv.Atoi(area); areaNum >= 900 {
		flags = append(flags, "SSN area number 900-999 is reserved for ITIN")
	}
	if group == "00" {
		flags = append(flags, "SSN group number (middle 2 digits) cannot be 00")
	}
	if serial == "0000" {
		flags = append(flags, "SSN serial number (last 4 digits) cannot be 0000")
	}

	return model.SSNValidationResult{IsValid: len(flags) == 0, Flags: flags}
}

func isNineDigits(s string) bool {
	if len(s) != 9 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allIdenticalDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
