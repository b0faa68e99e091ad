package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const MinPasswordLength = 8

// ValidatePassword applies the account password policy. The returned error
// is an ErrWeakPassword naming the first rule the password breaks.
func ValidatePassword(pw string) error {
	if utf8.RuneCountInString(pw) < MinPasswordLength {
		return newError(ErrWeakPassword, "Password must be at least 8 characters.")
	}
	if !strings.ContainsFunc(pw, unicode.IsUpper) {
		return newError(ErrWeakPassword, "Password must contain at least one uppercase letter.")
	}
	if !strings.ContainsFunc(pw, unicode.IsLower) {
		return newError(ErrWeakPassword, "Password must contain at least one lowercase letter.")
	}
	if !strings.ContainsFunc(pw, unicode.IsDigit) {
		return newError(ErrWeakPassword, "Password must contain at least one number.")
	}
	return nil
}

// validateNewPassword checks the policy and, when a confirmation was
// supplied, that it matches.
func validateNewPassword(pw, confirmation string) error {
	if err := ValidatePassword(pw); err != nil {
		return err
	}
	if confirmation != "" && confirmation != pw {
		return ErrPasswordMismatch
	}
	return nil
}
