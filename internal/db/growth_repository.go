package db

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type GrowthRepository struct {
	database *gorm.DB
}

func NewGrowthRepository(database *gorm.DB) *GrowthRepository {
	return &GrowthRepository{database: database}
}

func (repo *GrowthRepository) FindByID(id uint) (models.Growth, error) {
	var growth models.Growth
	if err := repo.database.First(&growth, id).Error; err != nil {
		return models.Growth{}, err
	}
	return growth, nil
}

func (repo *GrowthRepository) ListFiltered(filter RecordFilter) ([]models.Growth, error) {
	growths := make([]models.Growth, 0)
	query := repo.database.Model(&models.Growth{})
	if err := applyRecordFilter(query, filter, "date").Find(&growths).Error; err != nil {
		return nil, err
	}
	return growths, nil
}

func (repo *GrowthRepository) ListInWindow(babyIDs []uint, from time.Time, to time.Time) ([]models.Growth, error) {
	growths := make([]models.Growth, 0)
	if err := repo.database.
		Where("baby_id IN ? AND date >= ? AND date <= ?", babyIDs, from, to).
		Find(&growths).Error; err != nil {
		return nil, err
	}
	return growths, nil
}

// ListByBabyAsc returns the baby's full growth history in chart order.
func (repo *GrowthRepository) ListByBabyAsc(babyID uint) ([]models.Growth, error) {
	growths := make([]models.Growth, 0)
	if err := repo.database.
		Where("baby_id = ?", babyID).
		Order("date ASC, id ASC").
		Find(&growths).Error; err != nil {
		return nil, err
	}
	return growths, nil
}

func (repo *GrowthRepository) Create(growth *models.Growth) error {
	return repo.database.Create(growth).Error
}

func (repo *GrowthRepository) Save(growth *models.Growth) error {
	return repo.database.Save(growth).Error
}

func (repo *GrowthRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Growth{}, id).Error
}
