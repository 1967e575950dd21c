package models

import "time"

const (
	DiaperTypeWet   = "wet"
	DiaperTypeDirty = "dirty"
	DiaperTypeMixed = "mixed"
	DiaperTypeDry   = "dry"
)

const (
	DiaperConsistencyLiquid = "liquid"
	DiaperConsistencySoft   = "soft"
	DiaperConsistencyNormal = "normal"
	DiaperConsistencyHard   = "hard"
)

const (
	DiaperColorYellow = "yellow"
	DiaperColorGreen  = "green"
	DiaperColorBrown  = "brown"
	DiaperColorBlack  = "black"
	DiaperColorRed    = "red"
)

func IsValidDiaperType(value string) bool {
	switch value {
	case DiaperTypeWet, DiaperTypeDirty, DiaperTypeMixed, DiaperTypeDry:
		return true
	default:
		return false
	}
}

func IsValidDiaperConsistency(value string) bool {
	switch value {
	case DiaperConsistencyLiquid, DiaperConsistencySoft, DiaperConsistencyNormal, DiaperConsistencyHard:
		return true
	default:
		return false
	}
}

func IsValidDiaperColor(value string) bool {
	switch value {
	case DiaperColorYellow, DiaperColorGreen, DiaperColorBrown, DiaperColorBlack, DiaperColorRed:
		return true
	default:
		return false
	}
}

type Diaper struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BabyID      uint      `gorm:"not null;index" json:"babyId"`
	DiaperType  string    `gorm:"not null" json:"diaperType"`
	Consistency string    `json:"consistency,omitempty"`
	Color       string    `json:"color,omitempty"`
	Notes       string    `json:"notes"`
	Time        time.Time `gorm:"not null;index" json:"time"`
	CreatedAt   time.Time `json:"createdAt"`
}
