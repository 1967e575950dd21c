package api

import (
	"errors"

	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type settingsPatchInput struct {
	App           map[string]any `json:"app"`
	Notifications map[string]any `json:"notifications"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	settings, err := handler.repositories.Settings.FindOrCreateByUser(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(settings)
}

// UpdateSettings merges the patch sections into the stored settings. Only
// keys present in the body mutate; unknown keys are accepted into the open
// extension map.
func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input settingsPatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := handler.repositories.Settings.FindOrCreateByUser(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := services.ApplyAppSettingsPatch(&settings.App, input.App); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := services.ApplyNotificationSettingsPatch(&settings.Notifications, input.Notifications); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Settings.Save(&settings); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	err = handler.authService.ChangePassword(user, input.CurrentPassword, input.NewPassword, input.ConfirmPassword)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"ok": true})
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
	case errors.Is(err, services.ErrWeakPassword):
		return apiErrorWithDetails(c, fiber.StatusBadRequest, "weak password", services.PasswordPolicyViolations(input.NewPassword))
	default:
		return handler.respondServiceError(c, err)
	}
}

// DeleteAccount is the danger-zone cascade: babies, event records,
// settings, and notifications all go with the user.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	if err := handler.repositories.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.logger.Info("account deleted", zapUserID(user.ID))
	return c.JSON(fiber.Map{"ok": true})
}
