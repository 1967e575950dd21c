package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func createTestNotification(t *testing.T, app *fiber.App, token string, title string, kind string) uint {
	t.Helper()

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/notifications", map[string]any{
		"title":   title,
		"message": "something needs attention",
		"type":    kind,
	}, token))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create notification: expected status 201, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	id, ok := payload["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("create notification: expected a numeric id, got %v", payload["id"])
	}
	return uint(id)
}

func TestMarkAllNotificationsReadReportsAffectedCount(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "noisy", "noisy@example.com")

	createTestNotification(t, app, token, "first", "general")
	createTestNotification(t, app, token, "second", "reminder")
	alreadyReadID := createTestNotification(t, app, token, "third", "general")

	read := performRequest(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/notifications/%d/read", alreadyReadID), nil, token))
	if read.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", read.StatusCode)
	}

	response := performRequest(t, app, jsonRequest(t, http.MethodPut, "/api/notifications/read-all", nil, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	if updated, _ := payload["updated"].(float64); updated != 2 {
		t.Fatalf("expected 2 notifications marked read, got %v", payload["updated"])
	}

	// A second sweep finds nothing left to mark.
	again := performRequest(t, app, jsonRequest(t, http.MethodPut, "/api/notifications/read-all", nil, token))
	againPayload := map[string]any{}
	decodeJSONBody(t, again, &againPayload)
	if updated, _ := againPayload["updated"].(float64); updated != 0 {
		t.Fatalf("expected 0 on repeat sweep, got %v", againPayload["updated"])
	}
}

func TestUnreadCountTracksReads(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "counter", "counter@example.com")

	firstID := createTestNotification(t, app, token, "first", "general")
	createTestNotification(t, app, token, "second", "alert")

	count := func() float64 {
		response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/notifications/unread-count", nil, token))
		payload := map[string]any{}
		decodeJSONBody(t, response, &payload)
		value, _ := payload["unreadCount"].(float64)
		return value
	}

	if got := count(); got != 2 {
		t.Fatalf("expected 2 unread, got %v", got)
	}

	performRequest(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/notifications/%d/read", firstID), nil, token))
	if got := count(); got != 1 {
		t.Fatalf("expected 1 unread after reading one, got %v", got)
	}

	// Marking the same notification twice stays idempotent.
	performRequest(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/notifications/%d/read", firstID), nil, token))
	if got := count(); got != 1 {
		t.Fatalf("expected count unchanged after repeat read, got %v", got)
	}
}

func TestNotificationListFilters(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "filterer", "filterer@example.com")

	createTestNotification(t, app, token, "general one", "general")
	reminderID := createTestNotification(t, app, token, "reminder one", "reminder")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/notifications?type=reminder", nil, token))
	var notifications []map[string]any
	decodeJSONBody(t, response, &notifications)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(notifications))
	}
	if id, _ := notifications[0]["id"].(float64); uint(id) != reminderID {
		t.Fatalf("expected reminder %d, got %v", reminderID, notifications[0]["id"])
	}

	performRequest(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/notifications/%d/read", reminderID), nil, token))

	unreadResponse := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/notifications?unread=true", nil, token))
	var unread []map[string]any
	decodeJSONBody(t, unreadResponse, &unread)
	if len(unread) != 1 {
		t.Fatalf("expected 1 unread notification, got %d", len(unread))
	}
	if unread[0]["title"] != "general one" {
		t.Fatalf("expected the unread general notification, got %v", unread[0]["title"])
	}
}

func TestNotificationsInvisibleAcrossTenants(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken := registerTestUser(t, app, "recipient", "recipient@example.com")
	otherToken := registerTestUser(t, app, "outsider", "outsider@example.com")

	notificationID := createTestNotification(t, app, ownerToken, "private", "general")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet,
		fmt.Sprintf("/api/notifications/%d", notificationID), nil, otherToken))
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}
