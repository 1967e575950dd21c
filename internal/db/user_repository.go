package db

import (
	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// DeleteAccountAndRelatedData removes the user and everything hanging off
// the ownership chain in one transaction: event records of every owned
// baby, the babies themselves, settings, and notifications.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var babyIDs []uint
		if err := tx.Model(&models.BabyProfile{}).
			Where("user_id = ?", userID).
			Pluck("id", &babyIDs).Error; err != nil {
			return err
		}

		if len(babyIDs) > 0 {
			if err := deleteBabyRecords(tx, babyIDs); err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.BabyProfile{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Settings{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

func deleteBabyRecords(tx *gorm.DB, babyIDs []uint) error {
	eventModels := []any{
		&models.Feeding{},
		&models.Sleep{},
		&models.Diaper{},
		&models.Bath{},
		&models.Checkup{},
		&models.Growth{},
		&models.Allergy{},
		&models.Vaccination{},
		&models.Milestone{},
	}
	for _, eventModel := range eventModels {
		if err := tx.Where("baby_id IN ?", babyIDs).Delete(eventModel).Error; err != nil {
			return err
		}
	}
	return nil
}
