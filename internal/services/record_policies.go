package services

import (
	"errors"
	"strings"

	"github.com/cradlehq/cradle/internal/models"
)

var (
	ErrVaccinationNameRequired   = errors.New("vaccination name required")
	ErrVaccinationStatusInvalid  = errors.New("invalid vaccination status")
	ErrMilestoneTitleRequired    = errors.New("milestone title required")
	ErrMilestoneCategoryInvalid  = errors.New("invalid milestone category")
)

func ValidateVaccination(vaccination models.Vaccination) error {
	if strings.TrimSpace(vaccination.Name) == "" {
		return ErrVaccinationNameRequired
	}
	if !models.IsValidVaccinationStatus(vaccination.Status) {
		return ErrVaccinationStatusInvalid
	}
	return nil
}

func ValidateMilestone(milestone models.Milestone) error {
	if strings.TrimSpace(milestone.Title) == "" {
		return ErrMilestoneTitleRequired
	}
	if !models.IsValidMilestoneCategory(milestone.Category) {
		return ErrMilestoneCategoryInvalid
	}
	return nil
}
