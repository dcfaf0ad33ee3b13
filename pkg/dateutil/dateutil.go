// Package dateutil holds the age arithmetic shared by the domain model
// and the calculators.
package dateutil

import (
	"time"
)

// AgeInYear calculates the age reached during a calendar year
func AgeInYear(birthDate time.Time, year int) int {
	return year - birthDate.Year()
}

// GetRMDAge returns the age when Required Minimum Distributions start
// for a given birth year under the SECURE 2.0 Act phase-in
func GetRMDAge(birthYear int) int {
	switch {
	case birthYear <= 1950:
		return 72
	case birthYear >= 1951 && birthYear <= 1959:
		return 73
	default: // 1960 and later
		return 75
	}
}

// IsRMDYear checks if a year is one in which Required Minimum
// Distributions apply to an owner with the given birth date
func IsRMDYear(birthDate time.Time, year int) bool {
	return AgeInYear(birthDate, year) >= GetRMDAge(birthDate.Year())
}
