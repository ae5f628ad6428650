package domain

import "strings"

// LicenseCategory is a driver's-license class.
type LicenseCategory string

// List of accepted license categories
const (
	LicenseA  LicenseCategory = "A"
	LicenseB  LicenseCategory = "B"
	LicenseAB LicenseCategory = "A+B"
)

var allowedLicenseCategories = [...]LicenseCategory{
	LicenseA, LicenseB, LicenseAB,
}

// Valid checks if the LicenseCategory is one of the accepted categories
func (c LicenseCategory) Valid() bool {
	for _, v := range allowedLicenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ParseLicenseCategory trims and uppercases s before matching it.
func ParseLicenseCategory(s string) (LicenseCategory, bool) {
	c := LicenseCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}
