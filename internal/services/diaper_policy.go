package services

import (
	"errors"

	"github.com/cradlehq/cradle/internal/models"
)

var (
	ErrDiaperTypeInvalid        = errors.New("invalid diaper type")
	ErrDiaperConsistencyInvalid = errors.New("invalid diaper consistency")
	ErrDiaperColorInvalid       = errors.New("invalid diaper color")
)

func ValidateDiaper(diaper models.Diaper) error {
	if !models.IsValidDiaperType(diaper.DiaperType) {
		return ErrDiaperTypeInvalid
	}
	if diaper.Consistency != "" && !models.IsValidDiaperConsistency(diaper.Consistency) {
		return ErrDiaperConsistencyInvalid
	}
	if diaper.Color != "" && !models.IsValidDiaperColor(diaper.Color) {
		return ErrDiaperColorInvalid
	}
	return nil
}

type DiaperStats struct {
	Period string         `json:"period"`
	Total  int            `json:"total"`
	ByType map[string]int `json:"byType"`
	ByHour map[int]int    `json:"byHour"`
}

func BuildDiaperStats(period string, diapers []models.Diaper) DiaperStats {
	stats := DiaperStats{
		Period: period,
		Total:  len(diapers),
		ByType: map[string]int{},
		ByHour: map[int]int{},
	}
	for _, diaper := range diapers {
		stats.ByType[diaper.DiaperType]++
		stats.ByHour[diaper.Time.UTC().Hour()]++
	}
	return stats
}
