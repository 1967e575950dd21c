package models

import "time"

const (
	NotificationTypeGeneral  = "general"
	NotificationTypeReminder = "reminder"
	NotificationTypeAlert    = "alert"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

func IsValidNotificationType(value string) bool {
	switch value {
	case NotificationTypeGeneral, NotificationTypeReminder, NotificationTypeAlert:
		return true
	default:
		return false
	}
}

func IsValidNotificationPriority(value string) bool {
	switch value {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

type Notification struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"-"`
	BabyID       *uint      `gorm:"index" json:"babyId,omitempty"`
	Title        string     `gorm:"not null" json:"title"`
	Message      string     `gorm:"not null" json:"message"`
	Type         string     `gorm:"not null;default:general" json:"type"`
	Priority     string     `gorm:"not null;default:normal" json:"priority"`
	ReminderTime *time.Time `json:"reminderTime"`
	Alarm        bool       `gorm:"not null;default:false" json:"alarm"`
	IsRead       bool       `gorm:"not null;default:false" json:"isRead"`
	CreatedAt    time.Time  `json:"createdAt"`
}
