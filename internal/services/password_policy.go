package services

import (
	"errors"
	"unicode"
)

var ErrWeakPassword = errors.New("weak password")

// PasswordPolicyViolations lists the rules a candidate password breaks;
// an empty slice means the password is acceptable.
func PasswordPolicyViolations(password string) []string {
	var violations []string
	if len([]rune(password)) < 8 {
		violations = append(violations, "password must be at least 8 characters")
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if !hasUpper {
		violations = append(violations, "password must contain an uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "password must contain a lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "password must contain a digit")
	}
	return violations
}

func ValidatePasswordStrength(password string) error {
	if len(PasswordPolicyViolations(password)) > 0 {
		return ErrWeakPassword
	}
	return nil
}
