package api

import (
	"net/http"
	"testing"
)

func TestGetSettingsSeedsDefaults(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "defaults", "defaults@example.com")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/settings", nil, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	appSection, ok := payload["app"].(map[string]any)
	if !ok {
		t.Fatalf("expected an app section, got %v", payload["app"])
	}
	if appSection["theme"] != "light" {
		t.Fatalf("expected default theme light, got %v", appSection["theme"])
	}
	if appSection["measurementSystem"] != "metric" {
		t.Fatalf("expected default metric system, got %v", appSection["measurementSystem"])
	}
}

func TestUpdateSettingsMergesPartialPatch(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "tuner", "tuner@example.com")

	response := performRequest(t, app, jsonRequest(t, http.MethodPut, "/api/settings", map[string]any{
		"app": map[string]any{"theme": "dark"},
	}, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	appSection := payload["app"].(map[string]any)
	if appSection["theme"] != "dark" {
		t.Fatalf("expected theme dark, got %v", appSection["theme"])
	}
	// Untouched sections keep their defaults.
	if appSection["language"] != "en" {
		t.Fatalf("expected language untouched, got %v", appSection["language"])
	}
}

func TestUpdateSettingsRejectsInvalidValues(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "strict", "strict@example.com")

	cases := []map[string]any{
		{"app": map[string]any{"theme": "neon"}},
		{"notifications": map[string]any{"quietHoursStart": "25:00"}},
		{"notifications": map[string]any{"reminderInterval": 13}},
		{"notifications": map[string]any{"reminderInterval": 2.5}},
	}
	for _, patch := range cases {
		response := performRequest(t, app, jsonRequest(t, http.MethodPut, "/api/settings", patch, token))
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("patch %v: expected status 400, got %d", patch, response.StatusCode)
		}
	}
}

func TestChangePasswordWrongCurrentUnauthorized(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "rotator", "rotator@example.com")

	response := performRequest(t, app, jsonRequest(t, http.MethodPut, "/api/settings/password", map[string]string{
		"currentPassword": "WrongPass9",
		"newPassword":     "FreshPass2",
		"confirmPassword": "FreshPass2",
	}, token))
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestChangePasswordRotatesCredential(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "secure", "secure@example.com")

	response := performRequest(t, app, jsonRequest(t, http.MethodPut, "/api/settings/password", map[string]string{
		"currentPassword": "StrongPass1",
		"newPassword":     "FreshPass2",
		"confirmPassword": "FreshPass2",
	}, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	oldLogin := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "secure@example.com",
		"password": "StrongPass1",
	}, ""))
	if oldLogin.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected old password to be rejected, got %d", oldLogin.StatusCode)
	}

	newLogin := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "secure@example.com",
		"password": "FreshPass2",
	}, ""))
	if newLogin.StatusCode != http.StatusOK {
		t.Fatalf("expected new password to work, got %d", newLogin.StatusCode)
	}
}

func TestDeleteAccountRemovesEverything(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "leaver", "leaver@example.com")
	babyID := createTestBaby(t, app, token, "Ebba")
	createTestFeeding(t, app, token, babyID, "2025-06-01T08:00:00Z")

	response := performRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/settings/account", nil, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	// The session token now points at a deleted account.
	me := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/auth/me", nil, token))
	if me.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after account deletion, got %d", me.StatusCode)
	}

	login := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "leaver@example.com",
		"password": "StrongPass1",
	}, ""))
	if login.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected login to fail after deletion, got %d", login.StatusCode)
	}
}
