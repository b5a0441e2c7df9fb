// Package validate holds the input checks shared by the domain packages.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/mmynk/dormshare/internal/apperr"
)

// Text trims value and requires it to be non-empty and at most max runes.
func Text(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperr.Validation("%s is required", field)
	}
	return v, checkLen(field, v, max)
}

// OptionalText trims value and bounds its length. Empty is allowed.
func OptionalText(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	return v, checkLen(field, v, max)
}

func checkLen(field, v string, max int) error {
	if max > 0 && utf8.RuneCountInString(v) > max {
		return apperr.Validation("%s must be at most %d characters", field, max)
	}
	return nil
}
