package db

import (
	"errors"
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type SleepRepository struct {
	database *gorm.DB
}

func NewSleepRepository(database *gorm.DB) *SleepRepository {
	return &SleepRepository{database: database}
}

func (repo *SleepRepository) FindByID(id uint) (models.Sleep, error) {
	var sleep models.Sleep
	if err := repo.database.First(&sleep, id).Error; err != nil {
		return models.Sleep{}, err
	}
	return sleep, nil
}

func (repo *SleepRepository) ListFiltered(filter RecordFilter) ([]models.Sleep, error) {
	sleeps := make([]models.Sleep, 0)
	query := repo.database.Model(&models.Sleep{})
	if filter.Category != "" {
		query = query.Where("sleep_type = ?", filter.Category)
	}
	if err := applyRecordFilter(query, filter, "start_time").Find(&sleeps).Error; err != nil {
		return nil, err
	}
	return sleeps, nil
}

func (repo *SleepRepository) ListInWindow(babyIDs []uint, from time.Time, to time.Time) ([]models.Sleep, error) {
	sleeps := make([]models.Sleep, 0)
	if err := repo.database.
		Where("baby_id IN ? AND start_time >= ? AND start_time <= ?", babyIDs, from, to).
		Find(&sleeps).Error; err != nil {
		return nil, err
	}
	return sleeps, nil
}

// FindOpenByBaby returns the baby's in-progress session (nil when every
// session is closed).
func (repo *SleepRepository) FindOpenByBaby(babyID uint) (*models.Sleep, error) {
	var sleep models.Sleep
	err := repo.database.
		Where("baby_id = ? AND end_time IS NULL", babyID).
		Order("start_time DESC").
		First(&sleep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sleep, nil
}

// FindOpenForBabies returns the newest in-progress session across the
// given babies (nil when none is open).
func (repo *SleepRepository) FindOpenForBabies(babyIDs []uint) (*models.Sleep, error) {
	var sleep models.Sleep
	err := repo.database.
		Where("baby_id IN ? AND end_time IS NULL", babyIDs).
		Order("start_time DESC").
		First(&sleep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sleep, nil
}

func (repo *SleepRepository) Create(sleep *models.Sleep) error {
	return repo.database.Create(sleep).Error
}

func (repo *SleepRepository) Save(sleep *models.Sleep) error {
	return repo.database.Save(sleep).Error
}

func (repo *SleepRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Sleep{}, id).Error
}
