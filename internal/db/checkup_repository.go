package db

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type CheckupRepository struct {
	database *gorm.DB
}

func NewCheckupRepository(database *gorm.DB) *CheckupRepository {
	return &CheckupRepository{database: database}
}

func (repo *CheckupRepository) FindByID(id uint) (models.Checkup, error) {
	var checkup models.Checkup
	if err := repo.database.First(&checkup, id).Error; err != nil {
		return models.Checkup{}, err
	}
	return checkup, nil
}

func (repo *CheckupRepository) ListFiltered(filter RecordFilter) ([]models.Checkup, error) {
	checkups := make([]models.Checkup, 0)
	query := repo.database.Model(&models.Checkup{})
	if filter.Category != "" {
		query = query.Where("checkup_type = ?", filter.Category)
	}
	if err := applyRecordFilter(query, filter, "date").Find(&checkups).Error; err != nil {
		return nil, err
	}
	return checkups, nil
}

func (repo *CheckupRepository) ListInWindow(babyIDs []uint, from time.Time, to time.Time) ([]models.Checkup, error) {
	checkups := make([]models.Checkup, 0)
	if err := repo.database.
		Where("baby_id IN ? AND date >= ? AND date <= ?", babyIDs, from, to).
		Find(&checkups).Error; err != nil {
		return nil, err
	}
	return checkups, nil
}

// ListUpcoming returns checkups with a future follow-up appointment,
// soonest first.
func (repo *CheckupRepository) ListUpcoming(babyIDs []uint, now time.Time) ([]models.Checkup, error) {
	checkups := make([]models.Checkup, 0)
	if err := repo.database.
		Where("baby_id IN ? AND next_appointment IS NOT NULL AND next_appointment > ?", babyIDs, now).
		Order("next_appointment ASC").
		Find(&checkups).Error; err != nil {
		return nil, err
	}
	return checkups, nil
}

func (repo *CheckupRepository) Create(checkup *models.Checkup) error {
	return repo.database.Create(checkup).Error
}

func (repo *CheckupRepository) Save(checkup *models.Checkup) error {
	return repo.database.Save(checkup).Error
}

func (repo *CheckupRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Checkup{}, id).Error
}
