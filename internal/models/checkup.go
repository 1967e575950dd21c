package models

import "time"

const (
	CheckupTypeRoutine     = "routine"
	CheckupTypeSick        = "sick"
	CheckupTypeFollowup    = "followup"
	CheckupTypeVaccination = "vaccination"
	CheckupTypeSpecialist  = "specialist"
	CheckupTypeEmergency   = "emergency"
)

func IsValidCheckupType(value string) bool {
	switch value {
	case CheckupTypeRoutine, CheckupTypeSick, CheckupTypeFollowup,
		CheckupTypeVaccination, CheckupTypeSpecialist, CheckupTypeEmergency:
		return true
	default:
		return false
	}
}

// Checkup.NextAppointment, when set, must be strictly after Date.
type Checkup struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	BabyID          uint       `gorm:"not null;index" json:"babyId"`
	CheckupType     string     `gorm:"not null" json:"checkupType"`
	DoctorName      string     `json:"doctorName"`
	Reason          string     `json:"reason"`
	Date            time.Time  `gorm:"not null;index" json:"date"`
	NextAppointment *time.Time `json:"nextAppointment"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
}
