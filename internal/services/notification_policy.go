package services

import (
	"errors"
	"strings"

	"github.com/cradlehq/cradle/internal/models"
)

var (
	ErrNotificationTitleRequired    = errors.New("notification title required")
	ErrNotificationMessageRequired  = errors.New("notification message required")
	ErrNotificationTypeInvalid      = errors.New("invalid notification type")
	ErrNotificationPriorityInvalid  = errors.New("invalid notification priority")
)

func ValidateNotification(notification models.Notification) error {
	if strings.TrimSpace(notification.Title) == "" {
		return ErrNotificationTitleRequired
	}
	if strings.TrimSpace(notification.Message) == "" {
		return ErrNotificationMessageRequired
	}
	if !models.IsValidNotificationType(notification.Type) {
		return ErrNotificationTypeInvalid
	}
	if !models.IsValidNotificationPriority(notification.Priority) {
		return ErrNotificationPriorityInvalid
	}
	return nil
}
