package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func startTestSleep(t *testing.T, app *fiber.App, token string, babyID uint, start string) uint {
	t.Helper()

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/sleep", map[string]any{
		"babyId":    babyID,
		"sleepType": "nap",
		"startTime": start,
	}, token))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("start sleep: expected status 201, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	id, ok := payload["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("start sleep: expected a numeric id, got %v", payload["id"])
	}
	return uint(id)
}

func TestSecondOpenSleepSessionConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "sleeper", "sleeper@example.com")
	babyID := createTestBaby(t, app, token, "Noa")
	startTestSleep(t, app, token, babyID, "2025-06-01T13:00:00Z")

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/sleep", map[string]any{
		"babyId":    babyID,
		"sleepType": "night",
		"startTime": "2025-06-01T20:00:00Z",
	}, token))
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestClosedSleepDoesNotBlockNewSession(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "restful", "restful@example.com")
	babyID := createTestBaby(t, app, token, "Theo")

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/sleep", map[string]any{
		"babyId":    babyID,
		"sleepType": "nap",
		"startTime": "2025-06-01T13:00:00Z",
		"endTime":   "2025-06-01T14:00:00Z",
	}, token))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	second := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/sleep", map[string]any{
		"babyId":    babyID,
		"sleepType": "night",
		"startTime": "2025-06-01T20:00:00Z",
	}, token))
	if second.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 after the first session closed, got %d", second.StatusCode)
	}
}

func TestEndSleepDerivesDuration(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "napper", "napper@example.com")
	babyID := createTestBaby(t, app, token, "Pia")
	sleepID := startTestSleep(t, app, token, babyID, "2025-06-01T13:00:00Z")

	response := performRequest(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/sleep/%d/end", sleepID), map[string]any{
			"endTime": "2025-06-01T13:45:00Z",
			"quality": "good",
		}, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	if duration, _ := payload["duration"].(float64); duration != 45.0 {
		t.Fatalf("expected duration 45.0 minutes, got %v", payload["duration"])
	}
	if payload["quality"] != "good" {
		t.Fatalf("expected quality good, got %v", payload["quality"])
	}
}

func TestEndSleepTwiceConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "double", "double@example.com")
	babyID := createTestBaby(t, app, token, "Ada")
	sleepID := startTestSleep(t, app, token, babyID, "2025-06-01T13:00:00Z")

	path := fmt.Sprintf("/api/sleep/%d/end", sleepID)
	first := performRequest(t, app, jsonRequest(t, http.MethodPut, path, map[string]any{
		"endTime": "2025-06-01T14:00:00Z",
	}, token))
	if first.StatusCode != http.StatusOK {
		t.Fatalf("expected first end to succeed, got %d", first.StatusCode)
	}

	second := performRequest(t, app, jsonRequest(t, http.MethodPut, path, map[string]any{
		"endTime": "2025-06-01T15:00:00Z",
	}, token))
	if second.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", second.StatusCode)
	}
}

func TestEndSleepRejectsEndBeforeStart(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "backwards", "backwards@example.com")
	babyID := createTestBaby(t, app, token, "Isa")
	sleepID := startTestSleep(t, app, token, babyID, "2025-06-01T13:00:00Z")

	response := performRequest(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/sleep/%d/end", sleepID), map[string]any{
			"endTime": "2025-06-01T12:00:00Z",
		}, token))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestCurrentSleepReturnsOpenSessionThenNull(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "watcher", "watcher@example.com")
	babyID := createTestBaby(t, app, token, "Ola")

	empty := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/sleep/current", nil, token))
	if empty.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", empty.StatusCode)
	}
	var emptyPayload *map[string]any
	decodeJSONBody(t, empty, &emptyPayload)
	if emptyPayload != nil {
		t.Fatalf("expected null with no open session, got %v", emptyPayload)
	}

	sleepID := startTestSleep(t, app, token, babyID, "2025-06-01T13:00:00Z")
	open := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/sleep/current", nil, token))
	openPayload := map[string]any{}
	decodeJSONBody(t, open, &openPayload)
	if id, _ := openPayload["id"].(float64); uint(id) != sleepID {
		t.Fatalf("expected open session %d, got %v", sleepID, openPayload["id"])
	}
	if openPayload["endTime"] != nil {
		t.Fatalf("expected open session without end time, got %v", openPayload["endTime"])
	}
}
