package models

import "time"

const (
	SleepTypeNap   = "nap"
	SleepTypeNight = "night"
)

const (
	SleepQualityExcellent = "excellent"
	SleepQualityGood      = "good"
	SleepQualityFair      = "fair"
	SleepQualityPoor      = "poor"
	SleepQualityRestless  = "restless"
)

func IsValidSleepType(value string) bool {
	switch value {
	case SleepTypeNap, SleepTypeNight:
		return true
	default:
		return false
	}
}

func IsValidSleepQuality(value string) bool {
	switch value {
	case SleepQualityExcellent, SleepQualityGood, SleepQualityFair, SleepQualityPoor, SleepQualityRestless:
		return true
	default:
		return false
	}
}

// Sleep with a nil EndTime is an in-progress session; at most one such
// record may exist per baby. DurationMinutes is always derived from the
// two timestamps, never entered directly once both ends are known.
type Sleep struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	BabyID          uint       `gorm:"not null;index" json:"babyId"`
	SleepType       string     `gorm:"not null" json:"sleepType"`
	Quality         string     `json:"quality,omitempty"`
	StartTime       time.Time  `gorm:"not null;index" json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes *float64   `json:"duration"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
}
