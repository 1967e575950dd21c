package services

import (
	"errors"
	"testing"
	"time"
)

var resetTestSecret = []byte("reset-test-secret")

func TestPasswordResetTokenRoundTrip(t *testing.T) {
	now := time.Now()

	token, err := BuildPasswordResetToken(resetTestSecret, 42, "bcrypt-hash-value", time.Hour, now)
	if err != nil {
		t.Fatalf("BuildPasswordResetToken() error: %v", err)
	}

	claims, err := ParsePasswordResetToken(resetTestSecret, token, now)
	if err != nil {
		t.Fatalf("ParsePasswordResetToken() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user 42, got %d", claims.UserID)
	}
	if !IsPasswordStateFingerprintMatch(claims.PasswordState, "bcrypt-hash-value") {
		t.Fatal("expected fingerprint to match the issuing hash")
	}
}

func TestPasswordResetTokenExpires(t *testing.T) {
	// Issued two hours ago with a one-hour lifetime.
	issuedAt := time.Now().Add(-2 * time.Hour)

	token, err := BuildPasswordResetToken(resetTestSecret, 42, "bcrypt-hash-value", time.Hour, issuedAt)
	if err != nil {
		t.Fatalf("BuildPasswordResetToken() error: %v", err)
	}

	if _, err := ParsePasswordResetToken(resetTestSecret, token, time.Now()); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestPasswordResetTokenRejectsWrongSecret(t *testing.T) {
	now := time.Now()

	token, err := BuildPasswordResetToken(resetTestSecret, 42, "bcrypt-hash-value", time.Hour, now)
	if err != nil {
		t.Fatalf("BuildPasswordResetToken() error: %v", err)
	}

	if _, err := ParsePasswordResetToken([]byte("other-secret"), token, now); !errors.Is(err, ErrPasswordResetTokenInvalid) {
		t.Fatalf("expected ErrPasswordResetTokenInvalid, got %v", err)
	}
}

func TestPasswordResetTokenMissing(t *testing.T) {
	if _, err := ParsePasswordResetToken(resetTestSecret, "  ", time.Now()); !errors.Is(err, ErrPasswordResetTokenMissing) {
		t.Fatalf("expected ErrPasswordResetTokenMissing, got %v", err)
	}
}

func TestSessionTokenIsNotAResetToken(t *testing.T) {
	now := time.Now()

	sessionToken, err := BuildSessionToken(resetTestSecret, 42, time.Hour, now)
	if err != nil {
		t.Fatalf("BuildSessionToken() error: %v", err)
	}

	if _, err := ParsePasswordResetToken(resetTestSecret, sessionToken, now); err == nil {
		t.Fatal("expected a session token to be rejected as a reset token")
	}
}

func TestResetTokenIsNotASessionToken(t *testing.T) {
	now := time.Now()

	resetToken, err := BuildPasswordResetToken(resetTestSecret, 42, "bcrypt-hash-value", time.Hour, now)
	if err != nil {
		t.Fatalf("BuildPasswordResetToken() error: %v", err)
	}

	if _, err := ParseSessionToken(resetTestSecret, resetToken, now); !errors.Is(err, ErrSessionTokenInvalid) {
		t.Fatalf("expected ErrSessionTokenInvalid for a reset token, got %v", err)
	}

	sessionToken, err := BuildSessionToken(resetTestSecret, 42, time.Hour, now)
	if err != nil {
		t.Fatalf("BuildSessionToken() error: %v", err)
	}
	claims, err := ParseSessionToken(resetTestSecret, sessionToken, now)
	if err != nil {
		t.Fatalf("ParseSessionToken() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user 42, got %d", claims.UserID)
	}
}

func TestPasswordStateFingerprintChangesWithHash(t *testing.T) {
	first := PasswordStateFingerprint("hash-one")
	second := PasswordStateFingerprint("hash-two")

	if first == "" || second == "" {
		t.Fatal("expected non-empty fingerprints")
	}
	if first == second {
		t.Fatal("expected distinct hashes to fingerprint differently")
	}
	if IsPasswordStateFingerprintMatch(first, "hash-two") {
		t.Fatal("expected fingerprint bound to the original hash only")
	}
}
