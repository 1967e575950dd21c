package db

import (
	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type AllergyRepository struct {
	database *gorm.DB
}

func NewAllergyRepository(database *gorm.DB) *AllergyRepository {
	return &AllergyRepository{database: database}
}

func (repo *AllergyRepository) FindByID(id uint) (models.Allergy, error) {
	var allergy models.Allergy
	if err := repo.database.First(&allergy, id).Error; err != nil {
		return models.Allergy{}, err
	}
	return allergy, nil
}

func (repo *AllergyRepository) ListFiltered(filter RecordFilter) ([]models.Allergy, error) {
	allergies := make([]models.Allergy, 0)
	query := repo.database.Model(&models.Allergy{})
	if filter.Category != "" {
		query = query.Where("severity = ?", filter.Category)
	}
	if err := applyRecordFilter(query, filter, "created_at").Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}

func (repo *AllergyRepository) ListByBabies(babyIDs []uint) ([]models.Allergy, error) {
	allergies := make([]models.Allergy, 0)
	if err := repo.database.
		Where("baby_id IN ?", babyIDs).
		Order("created_at DESC, id DESC").
		Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}

func (repo *AllergyRepository) Create(allergy *models.Allergy) error {
	return repo.database.Create(allergy).Error
}

func (repo *AllergyRepository) Save(allergy *models.Allergy) error {
	return repo.database.Save(allergy).Error
}

func (repo *AllergyRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Allergy{}, id).Error
}
