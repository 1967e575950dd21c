package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const passwordResetTokenPurpose = "password_reset"

// DefaultPasswordResetTTL bounds how long a forgot-password token can be
// redeemed.
const DefaultPasswordResetTTL = time.Hour

var (
	ErrPasswordResetTokenMissing = errors.New("missing reset token")
	ErrPasswordResetTokenInvalid = errors.New("invalid reset token")
)

// PasswordResetClaims binds the token to the password hash it was issued
// against, so redeeming it (which rotates the hash) invalidates any other
// copy without server-side token storage.
type PasswordResetClaims struct {
	UserID        uint   `json:"uid"`
	Purpose       string `json:"purpose"`
	PasswordState string `json:"password_state"`
	jwt.RegisteredClaims
}

func BuildPasswordResetToken(secretKey []byte, userID uint, passwordHash string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = DefaultPasswordResetTTL
	}
	if now.IsZero() {
		now = time.Now()
	}

	passwordState := PasswordStateFingerprint(passwordHash)
	if passwordState == "" {
		return "", fmt.Errorf("%w: empty password state", ErrPasswordResetTokenInvalid)
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, PasswordResetClaims{
		UserID:        userID,
		Purpose:       passwordResetTokenPurpose,
		PasswordState: passwordState,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}).SignedString(secretKey)
}

func ParsePasswordResetToken(secretKey []byte, rawToken string, now time.Time) (*PasswordResetClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrPasswordResetTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &PasswordResetClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims,
		func(token *jwt.Token) (interface{}, error) { return secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrPasswordResetTokenInvalid
	}

	// Session tokens are signed with the same secret; purpose keeps the
	// two token kinds from being swapped.
	switch {
	case claims.Purpose != passwordResetTokenPurpose:
		return nil, fmt.Errorf("%w: wrong purpose", ErrPasswordResetTokenInvalid)
	case claims.ExpiresAt.Time.Before(now):
		return nil, fmt.Errorf("%w: expired", ErrPasswordResetTokenInvalid)
	case claims.UserID == 0:
		return nil, fmt.Errorf("%w: no user id", ErrPasswordResetTokenInvalid)
	case strings.TrimSpace(claims.PasswordState) == "":
		return nil, fmt.Errorf("%w: empty password state", ErrPasswordResetTokenInvalid)
	}
	return claims, nil
}

func PasswordStateFingerprint(passwordHash string) string {
	hash := strings.TrimSpace(passwordHash)
	if hash == "" {
		return ""
	}
	sum := sha256.Sum256([]byte("cradle.reset.password-state.v1:" + hash))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func IsPasswordStateFingerprintMatch(expected string, passwordHash string) bool {
	actual := PasswordStateFingerprint(passwordHash)
	if strings.TrimSpace(expected) == "" || actual == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
