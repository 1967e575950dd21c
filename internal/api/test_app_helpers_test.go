package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/cradlehq/cradle/internal/db"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cradle-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, []byte("test-secret-key"), t.TempDir(), zap.NewNop())
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, payload any, token string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	message, _ := payload["error"].(string)
	return message
}

// registerTestUser creates an account through the public endpoint and
// returns the session token from the response.
func registerTestUser(t *testing.T, app *fiber.App, username string, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username":        username,
		"email":           email,
		"password":        "StrongPass1",
		"confirmPassword": "StrongPass1",
	}, "")
	response := performRequest(t, app, request)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected status 201, got %d", email, response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("register %s: expected a session token", email)
	}
	return token
}

func createTestBaby(t *testing.T, app *fiber.App, token string, name string) uint {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/baby/profile", map[string]any{
		"name":        name,
		"dateOfBirth": "2025-01-15",
	}, token)
	response := performRequest(t, app, request)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create baby %s: expected status 201, got %d", name, response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	id, ok := payload["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("create baby %s: expected a numeric id, got %v", name, payload["id"])
	}
	return uint(id)
}

func createTestFeeding(t *testing.T, app *fiber.App, token string, babyID uint, at string) uint {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/feedings", map[string]any{
		"babyId":   babyID,
		"feedType": "formula",
		"amount":   120.0,
		"time":     at,
	}, token)
	response := performRequest(t, app, request)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create feeding: expected status 201, got %d", response.StatusCode)
	}

	payload := map[string]any{}
	decodeJSONBody(t, response, &payload)
	id, ok := payload["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("create feeding: expected a numeric id, got %v", payload["id"])
	}
	return uint(id)
}
