package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTokenTTL is the lifetime of a bearer token issued by
// register and login.
const DefaultSessionTokenTTL = 24 * time.Hour

var (
	ErrSessionTokenMissing = errors.New("missing session token")
	ErrSessionTokenInvalid = errors.New("invalid session token")
	ErrSessionTokenExpired = errors.New("expired session token")
)

// SessionClaims carries Purpose only so ParseSessionToken can see it:
// session tokens never set it, while reset tokens (signed with the same
// secret and carrying the same uid claim) always do.
type SessionClaims struct {
	UserID  uint   `json:"uid"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

func BuildSessionToken(secretKey []byte, userID uint, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTokenTTL
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ParseSessionToken(secretKey []byte, rawToken string, now time.Time) (*SessionClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrSessionTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionTokenInvalid
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrSessionTokenExpired
	}
	if claims.UserID == 0 {
		return nil, ErrSessionTokenInvalid
	}
	// A password-reset token must never work as a bearer credential.
	if claims.Purpose != "" {
		return nil, ErrSessionTokenInvalid
	}
	return claims, nil
}

// BearerToken extracts the raw token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
