package models

import "time"

const (
	FeedTypeBreast  = "breast"
	FeedTypeFormula = "formula"
	FeedTypeSolid   = "solid"
)

func IsValidFeedType(value string) bool {
	switch value {
	case FeedTypeBreast, FeedTypeFormula, FeedTypeSolid:
		return true
	default:
		return false
	}
}

type Feeding struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BabyID          uint      `gorm:"not null;index" json:"babyId"`
	FeedType        string    `gorm:"not null" json:"feedType"`
	AmountML        *float64  `json:"amount,omitempty"`
	DurationMinutes *float64  `json:"duration,omitempty"`
	Notes           string    `json:"notes"`
	Time            time.Time `gorm:"not null;index" json:"time"`
	CreatedAt       time.Time `json:"createdAt"`
}
