package models

import "time"

const (
	MilestoneCategoryGeneral   = "general"
	MilestoneCategoryMotor     = "motor"
	MilestoneCategoryLanguage  = "language"
	MilestoneCategorySocial    = "social"
	MilestoneCategoryCognitive = "cognitive"
)

func IsValidMilestoneCategory(value string) bool {
	switch value {
	case MilestoneCategoryGeneral, MilestoneCategoryMotor, MilestoneCategoryLanguage,
		MilestoneCategorySocial, MilestoneCategoryCognitive:
		return true
	default:
		return false
	}
}

type Milestone struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	BabyID      uint       `gorm:"not null;index" json:"babyId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Category    string     `gorm:"not null;default:general" json:"category"`
	Achieved    bool       `gorm:"not null;default:false" json:"achieved"`
	CreatedAt   time.Time  `json:"createdAt"`
}
