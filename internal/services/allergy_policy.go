package services

import (
	"errors"
	"strings"

	"github.com/cradlehq/cradle/internal/models"
)

var (
	ErrAllergyNameRequired    = errors.New("allergy name required")
	ErrAllergySeverityInvalid = errors.New("invalid allergy severity")
)

func ValidateAllergy(allergy models.Allergy) error {
	if strings.TrimSpace(allergy.Name) == "" {
		return ErrAllergyNameRequired
	}
	if !models.IsValidSeverity(allergy.Severity) {
		return ErrAllergySeverityInvalid
	}
	return nil
}

type AllergyStats struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"bySeverity"`
}

func BuildAllergyStats(allergies []models.Allergy) AllergyStats {
	stats := AllergyStats{
		Total:      len(allergies),
		BySeverity: map[string]int{},
	}
	for _, allergy := range allergies {
		stats.BySeverity[allergy.Severity]++
	}
	return stats
}
