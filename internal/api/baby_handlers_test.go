package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cradlehq/cradle/internal/models"
)

func TestCreateBabyDuplicateNameConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "namer", "namer@example.com")
	createTestBaby(t, app, token, "Alva")

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/baby/profile", map[string]any{
		"name":        "Alva",
		"dateOfBirth": "2025-02-01",
	}, token))
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestDifferentUsersMayReuseBabyNames(t *testing.T) {
	app, _ := newTestApp(t)
	firstToken := registerTestUser(t, app, "familyone", "one@example.com")
	secondToken := registerTestUser(t, app, "familytwo", "two@example.com")

	createTestBaby(t, app, firstToken, "Alva")
	createTestBaby(t, app, secondToken, "Alva")
}

func TestCreateBabyRejectsInvalidGender(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "gendered", "gendered@example.com")

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/baby/profile", map[string]any{
		"name":        "Kim",
		"dateOfBirth": "2025-02-01",
		"gender":      "unknown",
	}, token))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestDeleteBabyCascadesToEventRecords(t *testing.T) {
	app, database := newTestApp(t)
	token := registerTestUser(t, app, "cascader", "cascader@example.com")
	babyID := createTestBaby(t, app, token, "Siri")
	feedingID := createTestFeeding(t, app, token, babyID, "2025-06-01T08:00:00Z")
	startTestSleep(t, app, token, babyID, "2025-06-01T13:00:00Z")

	response := performRequest(t, app, jsonRequest(t, http.MethodDelete,
		fmt.Sprintf("/api/baby/profile/%d", babyID), nil, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	gone := performRequest(t, app, jsonRequest(t, http.MethodGet,
		fmt.Sprintf("/api/feedings/%d", feedingID), nil, token))
	if gone.StatusCode != http.StatusNotFound {
		t.Fatalf("expected orphaned feeding to answer 404, got %d", gone.StatusCode)
	}

	var feedingCount int64
	if err := database.Model(&models.Feeding{}).Where("baby_id = ?", babyID).Count(&feedingCount).Error; err != nil {
		t.Fatalf("count feedings: %v", err)
	}
	var sleepCount int64
	if err := database.Model(&models.Sleep{}).Where("baby_id = ?", babyID).Count(&sleepCount).Error; err != nil {
		t.Fatalf("count sleeps: %v", err)
	}
	if feedingCount != 0 || sleepCount != 0 {
		t.Fatalf("expected cascade to remove event rows, found %d feedings and %d sleeps", feedingCount, sleepCount)
	}
}

func TestUpdateBabyPartialPatch(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "patcher", "patcher@example.com")
	babyID := createTestBaby(t, app, token, "Leon")

	response := performRequest(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/baby/profile/%d", babyID), map[string]any{
			"weight": 6.8,
		}, token))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	if payload["name"] != "Leon" {
		t.Fatalf("expected name untouched, got %v", payload["name"])
	}
	if weight, _ := payload["weight"].(float64); weight != 6.8 {
		t.Fatalf("expected weight 6.8, got %v", payload["weight"])
	}
}
