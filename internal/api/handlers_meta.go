package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "cradle",
		"status":  "ok",
		"docs":    "/api/docs",
	})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": "unreachable",
		})
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "ok",
	})
}

// Docs is a machine-readable endpoint index, not an OpenAPI document.
func (handler *Handler) Docs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "cradle",
		"endpoints": fiber.Map{
			"auth":          []string{"POST /api/auth/register", "POST /api/auth/login", "POST /api/auth/forgot-password", "POST /api/auth/reset-password", "GET /api/auth/check-availability", "GET /api/auth/me", "PUT /api/auth/profile"},
			"baby":          []string{"GET /api/baby/profile", "POST /api/baby/profile", "GET /api/baby/profile/:id", "PUT /api/baby/profile/:id", "DELETE /api/baby/profile/:id", "POST /api/baby/upload-photo", "POST /api/baby/percentile"},
			"feedings":      []string{"GET /api/feedings", "POST /api/feedings", "GET /api/feedings/:id", "PUT /api/feedings/:id", "DELETE /api/feedings/:id", "GET /api/feedings/stats"},
			"sleep":         []string{"GET /api/sleep", "POST /api/sleep", "GET /api/sleep/current", "GET /api/sleep/:id", "PUT /api/sleep/:id", "PUT /api/sleep/:id/end", "DELETE /api/sleep/:id", "GET /api/sleep/stats"},
			"diapers":       []string{"GET /api/diapers", "POST /api/diapers", "GET /api/diapers/:id", "PUT /api/diapers/:id", "DELETE /api/diapers/:id", "GET /api/diapers/stats"},
			"baths":         []string{"GET /api/baths", "POST /api/baths", "GET /api/baths/:id", "PUT /api/baths/:id", "DELETE /api/baths/:id", "GET /api/baths/stats"},
			"checkups":      []string{"GET /api/checkups", "POST /api/checkups", "GET /api/checkups/upcoming", "GET /api/checkups/:id", "PUT /api/checkups/:id", "DELETE /api/checkups/:id", "GET /api/checkups/stats"},
			"growth":        []string{"GET /api/growth", "POST /api/growth", "GET /api/growth/:id", "PUT /api/growth/:id", "DELETE /api/growth/:id"},
			"allergies":     []string{"GET /api/allergies", "POST /api/allergies", "GET /api/allergies/:id", "PUT /api/allergies/:id", "DELETE /api/allergies/:id", "GET /api/allergies/stats"},
			"vaccinations":  []string{"GET /api/vaccinations", "POST /api/vaccinations", "GET /api/vaccinations/:id", "PUT /api/vaccinations/:id", "DELETE /api/vaccinations/:id"},
			"milestones":    []string{"GET /api/milestones", "POST /api/milestones", "GET /api/milestones/:id", "PUT /api/milestones/:id", "DELETE /api/milestones/:id"},
			"settings":      []string{"GET /api/settings", "PUT /api/settings", "PUT /api/settings/password", "DELETE /api/settings/account"},
			"notifications": []string{"GET /api/notifications", "POST /api/notifications", "GET /api/notifications/unread-count", "PUT /api/notifications/read-all", "GET /api/notifications/:id", "PUT /api/notifications/:id/read", "DELETE /api/notifications/:id"},
			"dashboard":     []string{"GET /api/dashboard"},
			"export":        []string{"GET /api/export/json", "GET /api/export/csv"},
			"health":        []string{"GET /health", "GET /api/health"},
		},
	})
}
