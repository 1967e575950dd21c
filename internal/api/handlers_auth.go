package api

import (
	"errors"
	"time"

	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type registerInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type forgotPasswordInput struct {
	Email string `json:"email"`
}

type resetPasswordInput struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Register(input.Username, input.Email, input.Password, input.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken), errors.Is(err, gorm.ErrDuplicatedKey):
			return apiError(c, fiber.StatusConflict, "username or email already registered")
		case errors.Is(err, services.ErrWeakPassword):
			return apiErrorWithDetails(c, fiber.StatusBadRequest, "weak password", services.PasswordPolicyViolations(input.Password))
		default:
			return handler.respondServiceError(c, err)
		}
	}

	token, err := services.BuildSessionToken(handler.secretKey, user.ID, handler.sessionTokenTTL, time.Now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.logger.Info("account registered", zapUserID(user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := services.BuildSessionToken(handler.secretKey, user.ID, handler.sessionTokenTTL, time.Now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	return c.JSON(user.Public())
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}

	var input updateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.authService.UpdateProfile(user, input.Username, input.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken), errors.Is(err, gorm.ErrDuplicatedKey):
			return apiError(c, fiber.StatusConflict, "username or email already registered")
		default:
			return handler.respondServiceError(c, err)
		}
	}
	return c.JSON(user.Public())
}

// ForgotPassword always answers 200 so responses cannot be used to probe
// which addresses have accounts. When the account exists the reset token
// is returned in the body; mail delivery is out of scope.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response := fiber.Map{"message": "if the account exists, a reset token has been issued"}

	email := services.NormalizeAuthEmail(input.Email)
	if email == "" {
		return c.JSON(response)
	}
	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return c.JSON(response)
	}

	token, err := services.BuildPasswordResetToken(handler.secretKey, user.ID, user.PasswordHash, handler.resetTokenTTL, time.Now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	response["resetToken"] = token
	return c.JSON(response)
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	err := handler.authService.ResetPassword(handler.secretKey, input.Token, input.NewPassword, input.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return apiErrorWithDetails(c, fiber.StatusBadRequest, "weak password", services.PasswordPolicyViolations(input.NewPassword))
		case errors.Is(err, services.ErrPasswordMismatch):
			return apiError(c, fiber.StatusBadRequest, "passwords do not match")
		default:
			return apiError(c, fiber.StatusBadRequest, "invalid or expired reset token")
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CheckAvailability(c *fiber.Ctx) error {
	response := fiber.Map{}

	if username := c.Query("username"); username != "" {
		taken, err := handler.authService.UsernameExists(username)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		response["usernameAvailable"] = !taken
	}
	if emailRaw := c.Query("email"); emailRaw != "" {
		email := services.NormalizeAuthEmail(emailRaw)
		if email == "" {
			response["emailAvailable"] = false
		} else {
			taken, err := handler.authService.EmailExists(email)
			if err != nil {
				return handler.respondServiceError(c, err)
			}
			response["emailAvailable"] = !taken
		}
	}
	if len(response) == 0 {
		return apiError(c, fiber.StatusBadRequest, "username or email query parameter required")
	}
	return c.JSON(response)
}
