package api

import (
	"strings"

	"github.com/cradlehq/cradle/internal/db"
	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type notificationInput struct {
	BabyID       *uint   `json:"babyId"`
	Title        *string `json:"title"`
	Message      *string `json:"message"`
	Type         *string `json:"type"`
	Priority     *string `json:"priority"`
	ReminderTime *string `json:"reminderTime"`
	Alarm        *bool   `json:"alarm"`
}

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}

	filter := db.NotificationFilter{
		UnreadOnly: strings.EqualFold(c.Query("unread"), "true"),
		Type:       c.Query("type"),
		Limit:      parseLimitQuery(c),
	}
	if babyID := parseUintQuery(c, "babyId"); babyID != nil {
		if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *babyID); err == nil {
			filter.BabyID = babyID
		}
	}

	notifications, err := handler.repositories.Notifications.ListForUser(user.ID, filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(notifications)
}

func (handler *Handler) GetNotification(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	notification, err := handler.repositories.Notifications.FindByIDForUser(id, user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(notification)
}

func (handler *Handler) CreateNotification(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input notificationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Title == nil || input.Message == nil {
		return apiError(c, fiber.StatusBadRequest, "title and message are required")
	}

	notification := models.Notification{
		UserID:   user.ID,
		Title:    *input.Title,
		Message:  *input.Message,
		Type:     models.NotificationTypeGeneral,
		Priority: models.PriorityNormal,
	}
	if input.Type != nil {
		notification.Type = *input.Type
	}
	if input.Priority != nil {
		notification.Priority = *input.Priority
	}
	if input.Alarm != nil {
		notification.Alarm = *input.Alarm
	}
	if input.BabyID != nil {
		if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
			return handler.respondServiceError(c, err)
		}
		notification.BabyID = input.BabyID
	}
	if input.ReminderTime != nil {
		reminder, err := services.ParseTimestamp(*input.ReminderTime)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		notification.ReminderTime = &reminder
	}
	if err := services.ValidateNotification(notification); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Notifications.Create(&notification); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

// MarkNotificationRead is idempotent; re-reading an already-read
// notification is not an error.
func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	notification, err := handler.repositories.Notifications.FindByIDForUser(id, user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !notification.IsRead {
		notification.IsRead = true
		if err := handler.repositories.Notifications.Save(&notification); err != nil {
			return handler.respondServiceError(c, err)
		}
	}
	return c.JSON(notification)
}

func (handler *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	affected, err := handler.repositories.Notifications.MarkAllRead(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "updated": affected})
}

func (handler *Handler) UnreadNotificationCount(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	count, err := handler.repositories.Notifications.CountUnread(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"unreadCount": count})
}

func (handler *Handler) DeleteNotification(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	if _, err := handler.repositories.Notifications.FindByIDForUser(id, user.ID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Notifications.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
