package services

import (
	"errors"

	"github.com/cradlehq/cradle/internal/models"
)

var (
	ErrCheckupTypeInvalid          = errors.New("invalid checkup type")
	ErrNextAppointmentNotAfterDate = errors.New("next appointment not after checkup date")
)

func ValidateCheckup(checkup models.Checkup) error {
	if !models.IsValidCheckupType(checkup.CheckupType) {
		return ErrCheckupTypeInvalid
	}
	if checkup.NextAppointment != nil && !checkup.NextAppointment.After(checkup.Date) {
		return ErrNextAppointmentNotAfterDate
	}
	return nil
}

type CheckupStats struct {
	Period string         `json:"period"`
	Total  int            `json:"total"`
	ByType map[string]int `json:"byType"`
}

func BuildCheckupStats(period string, checkups []models.Checkup) CheckupStats {
	stats := CheckupStats{
		Period: period,
		Total:  len(checkups),
		ByType: map[string]int{},
	}
	for _, checkup := range checkups {
		stats.ByType[checkup.CheckupType]++
	}
	return stats
}
