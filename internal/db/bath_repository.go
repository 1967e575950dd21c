package db

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type BathRepository struct {
	database *gorm.DB
}

func NewBathRepository(database *gorm.DB) *BathRepository {
	return &BathRepository{database: database}
}

func (repo *BathRepository) FindByID(id uint) (models.Bath, error) {
	var bath models.Bath
	if err := repo.database.First(&bath, id).Error; err != nil {
		return models.Bath{}, err
	}
	return bath, nil
}

func (repo *BathRepository) ListFiltered(filter RecordFilter) ([]models.Bath, error) {
	baths := make([]models.Bath, 0)
	query := repo.database.Model(&models.Bath{})
	if err := applyRecordFilter(query, filter, "time").Find(&baths).Error; err != nil {
		return nil, err
	}
	return baths, nil
}

func (repo *BathRepository) ListInWindow(babyIDs []uint, from time.Time, to time.Time) ([]models.Bath, error) {
	baths := make([]models.Bath, 0)
	if err := repo.database.
		Where("baby_id IN ? AND time >= ? AND time <= ?", babyIDs, from, to).
		Find(&baths).Error; err != nil {
		return nil, err
	}
	return baths, nil
}

func (repo *BathRepository) Create(bath *models.Bath) error {
	return repo.database.Create(bath).Error
}

func (repo *BathRepository) Save(bath *models.Bath) error {
	return repo.database.Save(bath).Error
}

func (repo *BathRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Bath{}, id).Error
}
