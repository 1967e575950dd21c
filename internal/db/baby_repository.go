package db

import (
	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type BabyRepository struct {
	database *gorm.DB
}

func NewBabyRepository(database *gorm.DB) *BabyRepository {
	return &BabyRepository{database: database}
}

func (repo *BabyRepository) ListByUser(userID uint) ([]models.BabyProfile, error) {
	babies := make([]models.BabyProfile, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&babies).Error; err != nil {
		return nil, err
	}
	return babies, nil
}

func (repo *BabyRepository) ListIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	if err := repo.database.Model(&models.BabyProfile{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *BabyRepository) FindByID(babyID uint) (models.BabyProfile, error) {
	var baby models.BabyProfile
	if err := repo.database.First(&baby, babyID).Error; err != nil {
		return models.BabyProfile{}, err
	}
	return baby, nil
}

func (repo *BabyRepository) ExistsByUserAndName(userID uint, name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.BabyProfile{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *BabyRepository) Create(baby *models.BabyProfile) error {
	return repo.database.Create(baby).Error
}

func (repo *BabyRepository) Save(baby *models.BabyProfile) error {
	return repo.database.Save(baby).Error
}

// DeleteCascade removes the profile and every event record hanging off it
// in one transaction; a failure anywhere rolls the whole delete back.
func (repo *BabyRepository) DeleteCascade(babyID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := deleteBabyRecords(tx, []uint{babyID}); err != nil {
			return err
		}
		if err := tx.Model(&models.Notification{}).
			Where("baby_id = ?", babyID).
			Update("baby_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BabyProfile{}, babyID).Error
	})
}
