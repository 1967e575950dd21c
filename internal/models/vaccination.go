package models

import "time"

const (
	VaccinationStatusPending   = "pending"
	VaccinationStatusCompleted = "completed"
	VaccinationStatusOverdue   = "overdue"
)

func IsValidVaccinationStatus(value string) bool {
	switch value {
	case VaccinationStatusPending, VaccinationStatusCompleted, VaccinationStatusOverdue:
		return true
	default:
		return false
	}
}

type Vaccination struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	BabyID      uint       `gorm:"not null;index" json:"babyId"`
	Name        string     `gorm:"not null" json:"name"`
	Date        *time.Time `json:"date"`
	NextDueDate *time.Time `json:"nextDueDate"`
	Status      string     `gorm:"not null;default:pending" json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
}
