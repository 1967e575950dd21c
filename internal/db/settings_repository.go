package db

import (
	"errors"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// FindOrCreateByUser loads the user's settings row, seeding defaults on
// first access so reads never 404.
func (repo *SettingsRepository) FindOrCreateByUser(userID uint) (models.Settings, error) {
	var settings models.Settings
	err := repo.database.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Settings{}, err
	}
	settings = models.DefaultSettings(userID)
	if err := repo.database.Create(&settings).Error; err != nil {
		// Another request may have seeded the row first.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Settings
			if lookupErr := repo.database.Where("user_id = ?", userID).First(&existing).Error; lookupErr == nil {
				return existing, nil
			}
		}
		return models.Settings{}, err
	}
	return settings, nil
}

func (repo *SettingsRepository) Save(settings *models.Settings) error {
	return repo.database.Save(settings).Error
}

func (repo *SettingsRepository) ResetForUser(userID uint) (models.Settings, error) {
	settings, err := repo.FindOrCreateByUser(userID)
	if err != nil {
		return models.Settings{}, err
	}
	defaults := models.DefaultSettings(userID)
	settings.App = defaults.App
	settings.Notifications = defaults.Notifications
	if err := repo.database.Save(&settings).Error; err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
