package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func createTestCheckup(t *testing.T, app *fiber.App, token string, babyID uint, date string, nextAppointment string) uint {
	t.Helper()

	payload := map[string]any{
		"babyId":      babyID,
		"checkupType": "routine",
		"date":        date,
	}
	if nextAppointment != "" {
		payload["nextAppointment"] = nextAppointment
	}
	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/checkups", payload, token))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 creating checkup, got %d", response.StatusCode)
	}

	created := map[string]any{}
	decodeJSONBody(t, response, &created)
	id, ok := created["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("expected a checkup id, got %v", created["id"])
	}
	return uint(id)
}

func TestUpcomingCheckupsFutureOnlySoonestFirst(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "checkupowner", "checkupowner@example.com")
	babyID := createTestBaby(t, app, token, "Nora")

	now := time.Now().UTC()
	stamp := func(offset time.Duration) string {
		return now.Add(offset).Format(time.RFC3339)
	}

	// Past appointment, no appointment, and two future ones out of order.
	createTestCheckup(t, app, token, babyID, stamp(-30*24*time.Hour), stamp(-10*24*time.Hour))
	createTestCheckup(t, app, token, babyID, stamp(-24*time.Hour), "")
	laterID := createTestCheckup(t, app, token, babyID, stamp(-5*24*time.Hour), stamp(7*24*time.Hour))
	soonerID := createTestCheckup(t, app, token, babyID, stamp(-3*24*time.Hour), stamp(2*24*time.Hour))

	// Another account's future appointment must never show up.
	otherToken := registerTestUser(t, app, "checkupother", "checkupother@example.com")
	otherBabyID := createTestBaby(t, app, otherToken, "Nora")
	createTestCheckup(t, app, otherToken, otherBabyID, stamp(-24*time.Hour), stamp(24*time.Hour))

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/checkups/upcoming", nil, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	upcoming := []map[string]any{}
	decodeJSONBody(t, response, &upcoming)
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming checkups, got %d", len(upcoming))
	}
	if got := uint(upcoming[0]["id"].(float64)); got != soonerID {
		t.Fatalf("expected soonest appointment %d first, got %d", soonerID, got)
	}
	if got := uint(upcoming[1]["id"].(float64)); got != laterID {
		t.Fatalf("expected appointment %d second, got %d", laterID, got)
	}
}
