package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSSNFormat(t *testing.T) {
	for _, ssn := range []string{"", "123", "123-45-678", "123-45-67890", "12345678a", "abc-de-fghi"} {
		result := ValidateSSN(ssn)
		require.False(t, result.IsValid, "ssn %q", ssn)
		require.Equal(t, []string{"Invalid SSN format"}, result.Flags, "ssn %q", ssn)
	}
}

func TestValidateSSNPatterns(t *testing.T) {
	tests := []struct {
		name string
		ssn  string
		flag string
	}{
		{"all identical digits", "111-11-1111", "SSN contains all identical digits"},
		{"sequential", "123-45-6789", "SSN is a sequential pattern"},
		{"reverse sequential", "987-65-4321", "SSN is a reverse sequential pattern"},
		{"area 000", "000-12-3456", "SSN area number (first 3 digits) cannot be 000"},
		{"area 666", "666-12-3456", "SSN area number 666 was never issued"},
		{"area 900", "900-12-3456", "SSN area number 900-999 is reserved for ITIN"},
		{"area 999", "999-12-3456", "SSN area number 900-999 is reserved for ITIN"},
		{"group 00", "123-00-6789", "SSN group number (middle 2 digits) cannot be 00"},
		{"serial 0000", "123-45-0000", "SSN serial number (last 4 digits) cannot be 0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSSN(tt.ssn)
			require.False(t, result.IsValid)
			require.Contains(t, result.Flags, tt.flag)
		})
	}
}

func TestValidateSSNValid(t *testing.T) {
	for _, ssn := range []string{"123-45-6780", "456-78-1234", "456781234", "899-99-9999"} {
		result := ValidateSSN(ssn)
		require.True(t, result.IsValid, "ssn %q flagged: %v", ssn, result.Flags)
		require.Empty(t, result.Flags)
	}
}

func TestValidateSSNAccumulatesAllFlags(t *testing.T) {
	// Area 000, group 00 and serial 0000 all apply at once; identical digits too.
	result := ValidateSSN("000-00-0000")

	require.False(t, result.IsValid)
	require.Equal(t, []string{
		"SSN contains all identical digits",
		"SSN area number (first 3 digits) cannot be 000",
		"SSN group number (middle 2 digits) cannot be 00",
		"SSN serial number (last 4 digits) cannot be 0000",
	}, result.Flags)
}

func TestValidateSSNBareDigits(t *testing.T) {
	withHyphens := ValidateSSN("666-12-3456")
	bare := ValidateSSN("666123456")
	require.Equal(t, withHyphens, bare)
}
