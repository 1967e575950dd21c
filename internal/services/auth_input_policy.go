package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrUsernameInvalid        = errors.New("username invalid")
	ErrEmailInvalid           = errors.New("email invalid")
)

var usernameFormatRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)

// NormalizeAuthEmail lowercases and trims the address and returns "" when
// it does not parse as a mail address.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// NormalizeUsername trims the handle and enforces the allowed alphabet
// and length.
func NormalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if !usernameFormatRegex.MatchString(username) {
		return "", ErrUsernameInvalid
	}
	return username, nil
}
