package models

import "time"

const (
	BathDurationMinMinutes = 1
	BathDurationMaxMinutes = 60
)

type Bath struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	BabyID            uint      `gorm:"not null;index" json:"babyId"`
	Time              time.Time `gorm:"not null;index" json:"time"`
	DurationMinutes   float64   `gorm:"not null" json:"duration"`
	ProductsUsed      []string  `gorm:"serializer:json" json:"productsUsed"`
	WaterTemperatureC *float64  `json:"waterTemperature,omitempty"`
	MoodBefore        string    `json:"moodBefore,omitempty"`
	MoodAfter         string    `json:"moodAfter,omitempty"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
}
