package db

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type FeedingRepository struct {
	database *gorm.DB
}

func NewFeedingRepository(database *gorm.DB) *FeedingRepository {
	return &FeedingRepository{database: database}
}

func (repo *FeedingRepository) FindByID(id uint) (models.Feeding, error) {
	var feeding models.Feeding
	if err := repo.database.First(&feeding, id).Error; err != nil {
		return models.Feeding{}, err
	}
	return feeding, nil
}

func (repo *FeedingRepository) ListFiltered(filter RecordFilter) ([]models.Feeding, error) {
	feedings := make([]models.Feeding, 0)
	query := repo.database.Model(&models.Feeding{})
	if filter.Category != "" {
		query = query.Where("feed_type = ?", filter.Category)
	}
	if err := applyRecordFilter(query, filter, "time").Find(&feedings).Error; err != nil {
		return nil, err
	}
	return feedings, nil
}

func (repo *FeedingRepository) ListInWindow(babyIDs []uint, from time.Time, to time.Time) ([]models.Feeding, error) {
	feedings := make([]models.Feeding, 0)
	if err := repo.database.
		Where("baby_id IN ? AND time >= ? AND time <= ?", babyIDs, from, to).
		Find(&feedings).Error; err != nil {
		return nil, err
	}
	return feedings, nil
}

func (repo *FeedingRepository) Create(feeding *models.Feeding) error {
	return repo.database.Create(feeding).Error
}

func (repo *FeedingRepository) Save(feeding *models.Feeding) error {
	return repo.database.Save(feeding).Error
}

func (repo *FeedingRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Feeding{}, id).Error
}
