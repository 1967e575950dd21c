// Package security generates the HMAC signing secret used for session
// and password-reset tokens when no SECRET_KEY is configured.
package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// secretAlphabet is alphanumeric so the generated secret can be pasted
// into an env file without quoting.
const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var errSecretLength = errors.New("secret length must be positive")

// GenerateSigningSecret returns a cryptographically secure alphanumeric
// secret of the requested length. Sampling uses crypto/rand rejection via
// big.Int so no alphabet character is favored.
func GenerateSigningSecret(length int) (string, error) {
	if length <= 0 {
		return "", errSecretLength
	}

	limit := big.NewInt(int64(len(secretAlphabet)))
	secret := make([]byte, length)
	for index := range secret {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		secret[index] = secretAlphabet[position.Int64()]
	}

	return string(secret), nil
}
