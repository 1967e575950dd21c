package models

import "time"

// Plausible clinical ranges; out-of-range measurements are rejected,
// never clamped.
const (
	GrowthWeightMinKG = 0.5
	GrowthWeightMaxKG = 50.0

	GrowthHeightMinCM = 20.0
	GrowthHeightMaxCM = 200.0

	GrowthHeadMinCM = 20.0
	GrowthHeadMaxCM = 60.0

	PercentileMin = 0.0
	PercentileMax = 100.0
)

// Growth records are unique per (baby, calendar day). Date is stored
// truncated to midnight UTC so the uniqueness index covers the whole day.
type Growth struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	BabyID              uint      `gorm:"not null;uniqueIndex:uidx_baby_day" json:"babyId"`
	Date                time.Time `gorm:"not null;uniqueIndex:uidx_baby_day" json:"date"`
	WeightKG            *float64  `json:"weight"`
	HeightCM            *float64  `json:"height"`
	HeadCircumferenceCM *float64  `json:"headCircumference"`
	WeightPercentile    *float64  `json:"weightPercentile,omitempty"`
	HeightPercentile    *float64  `json:"heightPercentile,omitempty"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
}
