package models

import (
	"encoding/json"
	"time"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

const (
	MeasurementMetric   = "metric"
	MeasurementImperial = "imperial"
)

const (
	DeleteDataNever   = "never"
	DeleteDataAfter30 = "30days"
	DeleteDataAfter90 = "90days"
	DeleteDataAfter1Y = "1year"
)

var SupportedLanguages = []string{"en", "es", "fr", "de", "it"}

func IsValidTheme(value string) bool {
	switch value {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	default:
		return false
	}
}

func IsValidLanguage(value string) bool {
	for _, language := range SupportedLanguages {
		if value == language {
			return true
		}
	}
	return false
}

func IsValidMeasurementSystem(value string) bool {
	switch value {
	case MeasurementMetric, MeasurementImperial:
		return true
	default:
		return false
	}
}

func IsValidDeleteDataAfter(value string) bool {
	switch value {
	case DeleteDataNever, DeleteDataAfter30, DeleteDataAfter90, DeleteDataAfter1Y:
		return true
	default:
		return false
	}
}

// AppSettings holds the known application preferences plus an open Extra
// map so clients can store forward-compatible keys without a schema
// change. Extra keys round-trip through JSON untouched and unvalidated.
type AppSettings struct {
	Theme             string         `json:"theme"`
	Language          string         `json:"language"`
	MeasurementSystem string         `json:"measurementSystem"`
	AutoSync          bool           `json:"autoSync"`
	DataBackup        bool           `json:"dataBackup"`
	ShareWithPartner  bool           `json:"shareWithPartner"`
	PrivacyMode       bool           `json:"privacyMode"`
	DeleteDataAfter   string         `json:"deleteDataAfter"`
	Extra             map[string]any `json:"-"`
}

// NotificationSettings mirrors AppSettings: fixed toggles plus an open
// extension map.
type NotificationSettings struct {
	FeedingReminders     bool           `json:"feedingReminders"`
	DiaperReminders      bool           `json:"diaperReminders"`
	SleepReminders       bool           `json:"sleepReminders"`
	MedicationReminders  bool           `json:"medicationReminders"`
	AppointmentReminders bool           `json:"appointmentReminders"`
	EmailNotifications   bool           `json:"emailNotifications"`
	PushNotifications    bool           `json:"pushNotifications"`
	SMSNotifications     bool           `json:"smsNotifications"`
	ReminderIntervalH    int            `json:"reminderInterval"`
	QuietHoursStart      string         `json:"quietHoursStart"`
	QuietHoursEnd        string         `json:"quietHoursEnd"`
	Extra                map[string]any `json:"-"`
}

type Settings struct {
	ID            uint                 `gorm:"primaryKey" json:"-"`
	UserID        uint                 `gorm:"not null;uniqueIndex" json:"-"`
	App           AppSettings          `gorm:"serializer:json" json:"app"`
	Notifications NotificationSettings `gorm:"serializer:json" json:"notifications"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func DefaultAppSettings() AppSettings {
	return AppSettings{
		Theme:             ThemeLight,
		Language:          "en",
		MeasurementSystem: MeasurementMetric,
		AutoSync:          true,
		DataBackup:        true,
		ShareWithPartner:  true,
		PrivacyMode:       false,
		DeleteDataAfter:   DeleteDataNever,
	}
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		FeedingReminders:     true,
		DiaperReminders:      true,
		SleepReminders:       true,
		MedicationReminders:  true,
		AppointmentReminders: true,
		EmailNotifications:   true,
		PushNotifications:    true,
		SMSNotifications:     false,
		ReminderIntervalH:    3,
		QuietHoursStart:      "22:00",
		QuietHoursEnd:        "07:00",
	}
}

func DefaultSettings(userID uint) Settings {
	return Settings{
		UserID:        userID,
		App:           DefaultAppSettings(),
		Notifications: DefaultNotificationSettings(),
	}
}

type appSettingsAlias AppSettings

func (settings AppSettings) MarshalJSON() ([]byte, error) {
	return marshalWithExtras(appSettingsAlias(settings), settings.Extra)
}

func (settings *AppSettings) UnmarshalJSON(data []byte) error {
	alias := (*appSettingsAlias)(settings)
	if err := json.Unmarshal(data, alias); err != nil {
		return err
	}
	extras, err := collectExtras(data, knownJSONKeys(appSettingsAlias{}))
	if err != nil {
		return err
	}
	settings.Extra = extras
	return nil
}

type notificationSettingsAlias NotificationSettings

func (settings NotificationSettings) MarshalJSON() ([]byte, error) {
	return marshalWithExtras(notificationSettingsAlias(settings), settings.Extra)
}

func (settings *NotificationSettings) UnmarshalJSON(data []byte) error {
	alias := (*notificationSettingsAlias)(settings)
	if err := json.Unmarshal(data, alias); err != nil {
		return err
	}
	extras, err := collectExtras(data, knownJSONKeys(notificationSettingsAlias{}))
	if err != nil {
		return err
	}
	settings.Extra = extras
	return nil
}

func marshalWithExtras(known any, extras map[string]any) ([]byte, error) {
	base, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return base, nil
	}
	merged := map[string]any{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range extras {
		if _, taken := merged[key]; !taken {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

func collectExtras(data []byte, known map[string]struct{}) (map[string]any, error) {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var extras map[string]any
	for key, value := range raw {
		if _, ok := known[key]; ok {
			continue
		}
		if extras == nil {
			extras = map[string]any{}
		}
		extras[key] = value
	}
	return extras, nil
}

func knownJSONKeys(value any) map[string]struct{} {
	base, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &raw); err != nil {
		return nil
	}
	keys := make(map[string]struct{}, len(raw))
	for key := range raw {
		keys[key] = struct{}{}
	}
	return keys
}
