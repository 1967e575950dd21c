package api

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

const contextUserKey = "current_user"

// AuthRequired validates the bearer token and loads the account into the
// request context. Any failure is a uniform 401.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := services.BearerToken(c.Get(fiber.HeaderAuthorization))
	claims, err := services.ParseSessionToken(handler.secretKey, rawToken, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	user, err := handler.repositories.Users.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentUserOrUnauthorized(c *fiber.Ctx) (*models.User, error) {
	user, ok := currentUser(c)
	if !ok {
		return nil, apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	return user, nil
}
