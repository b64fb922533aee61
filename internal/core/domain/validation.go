package domain

import "regexp"

var nationalIDPattern = regexp.MustCompile(`^\d{10}$`)

// ValidNationalID checks the 10-digit national code format.
func ValidNationalID(id string) bool {
	return nationalIDPattern.MatchString(id)
}
