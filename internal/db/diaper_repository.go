package db

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type DiaperRepository struct {
	database *gorm.DB
}

func NewDiaperRepository(database *gorm.DB) *DiaperRepository {
	return &DiaperRepository{database: database}
}

func (repo *DiaperRepository) FindByID(id uint) (models.Diaper, error) {
	var diaper models.Diaper
	if err := repo.database.First(&diaper, id).Error; err != nil {
		return models.Diaper{}, err
	}
	return diaper, nil
}

func (repo *DiaperRepository) ListFiltered(filter RecordFilter) ([]models.Diaper, error) {
	diapers := make([]models.Diaper, 0)
	query := repo.database.Model(&models.Diaper{})
	if filter.Category != "" {
		query = query.Where("diaper_type = ?", filter.Category)
	}
	if err := applyRecordFilter(query, filter, "time").Find(&diapers).Error; err != nil {
		return nil, err
	}
	return diapers, nil
}

func (repo *DiaperRepository) ListInWindow(babyIDs []uint, from time.Time, to time.Time) ([]models.Diaper, error) {
	diapers := make([]models.Diaper, 0)
	if err := repo.database.
		Where("baby_id IN ? AND time >= ? AND time <= ?", babyIDs, from, to).
		Find(&diapers).Error; err != nil {
		return nil, err
	}
	return diapers, nil
}

func (repo *DiaperRepository) Create(diaper *models.Diaper) error {
	return repo.database.Create(diaper).Error
}

func (repo *DiaperRepository) Save(diaper *models.Diaper) error {
	return repo.database.Save(diaper).Error
}

func (repo *DiaperRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Diaper{}, id).Error
}
