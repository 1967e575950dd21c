package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/cradlehq/cradle/internal/models"
)

var ErrSettingsValueInvalid = errors.New("invalid settings value")

var quietHoursRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	ReminderIntervalMinHours = 1
	ReminderIntervalMaxHours = 12
)

// ApplyAppSettingsPatch merges a partial app-settings object into the
// current value. Only keys present in the patch mutate; known keys are
// validated, unknown ones land in the open Extra map untouched.
func ApplyAppSettingsPatch(current *models.AppSettings, patch map[string]any) error {
	for key, value := range patch {
		switch key {
		case "theme":
			text, ok := value.(string)
			if !ok || !models.IsValidTheme(text) {
				return fmt.Errorf("%w: theme", ErrSettingsValueInvalid)
			}
			current.Theme = text
		case "language":
			text, ok := value.(string)
			if !ok || !models.IsValidLanguage(text) {
				return fmt.Errorf("%w: language", ErrSettingsValueInvalid)
			}
			current.Language = text
		case "measurementSystem":
			text, ok := value.(string)
			if !ok || !models.IsValidMeasurementSystem(text) {
				return fmt.Errorf("%w: measurementSystem", ErrSettingsValueInvalid)
			}
			current.MeasurementSystem = text
		case "deleteDataAfter":
			text, ok := value.(string)
			if !ok || !models.IsValidDeleteDataAfter(text) {
				return fmt.Errorf("%w: deleteDataAfter", ErrSettingsValueInvalid)
			}
			current.DeleteDataAfter = text
		case "autoSync":
			if err := assignBool(&current.AutoSync, key, value); err != nil {
				return err
			}
		case "dataBackup":
			if err := assignBool(&current.DataBackup, key, value); err != nil {
				return err
			}
		case "shareWithPartner":
			if err := assignBool(&current.ShareWithPartner, key, value); err != nil {
				return err
			}
		case "privacyMode":
			if err := assignBool(&current.PrivacyMode, key, value); err != nil {
				return err
			}
		default:
			if current.Extra == nil {
				current.Extra = map[string]any{}
			}
			current.Extra[key] = value
		}
	}
	return nil
}

// ApplyNotificationSettingsPatch is the notifications-section counterpart
// of ApplyAppSettingsPatch.
func ApplyNotificationSettingsPatch(current *models.NotificationSettings, patch map[string]any) error {
	for key, value := range patch {
		switch key {
		case "feedingReminders":
			if err := assignBool(&current.FeedingReminders, key, value); err != nil {
				return err
			}
		case "diaperReminders":
			if err := assignBool(&current.DiaperReminders, key, value); err != nil {
				return err
			}
		case "sleepReminders":
			if err := assignBool(&current.SleepReminders, key, value); err != nil {
				return err
			}
		case "medicationReminders":
			if err := assignBool(&current.MedicationReminders, key, value); err != nil {
				return err
			}
		case "appointmentReminders":
			if err := assignBool(&current.AppointmentReminders, key, value); err != nil {
				return err
			}
		case "emailNotifications":
			if err := assignBool(&current.EmailNotifications, key, value); err != nil {
				return err
			}
		case "pushNotifications":
			if err := assignBool(&current.PushNotifications, key, value); err != nil {
				return err
			}
		case "smsNotifications":
			if err := assignBool(&current.SMSNotifications, key, value); err != nil {
				return err
			}
		case "reminderInterval":
			number, ok := value.(float64)
			interval := int(number)
			if !ok || float64(interval) != number || interval < ReminderIntervalMinHours || interval > ReminderIntervalMaxHours {
				return fmt.Errorf("%w: reminderInterval", ErrSettingsValueInvalid)
			}
			current.ReminderIntervalH = interval
		case "quietHoursStart":
			text, ok := value.(string)
			if !ok || !quietHoursRegex.MatchString(text) {
				return fmt.Errorf("%w: quietHoursStart", ErrSettingsValueInvalid)
			}
			current.QuietHoursStart = text
		case "quietHoursEnd":
			text, ok := value.(string)
			if !ok || !quietHoursRegex.MatchString(text) {
				return fmt.Errorf("%w: quietHoursEnd", ErrSettingsValueInvalid)
			}
			current.QuietHoursEnd = text
		default:
			if current.Extra == nil {
				current.Extra = map[string]any{}
			}
			current.Extra[key] = value
		}
	}
	return nil
}

func assignBool(target *bool, key string, value any) error {
	flag, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSettingsValueInvalid, key)
	}
	*target = flag
	return nil
}
