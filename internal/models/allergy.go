package models

import "time"

const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

func IsValidSeverity(value string) bool {
	switch value {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	default:
		return false
	}
}

type Allergy struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	BabyID        uint       `gorm:"not null;index" json:"babyId"`
	Name          string     `gorm:"not null" json:"name"`
	Severity      string     `gorm:"not null" json:"severity"`
	Reaction      string     `json:"reaction"`
	Notes         string     `json:"notes"`
	DiagnosedDate *time.Time `json:"diagnosedDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}
