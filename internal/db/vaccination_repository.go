package db

import (
	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type VaccinationRepository struct {
	database *gorm.DB
}

func NewVaccinationRepository(database *gorm.DB) *VaccinationRepository {
	return &VaccinationRepository{database: database}
}

func (repo *VaccinationRepository) FindByID(id uint) (models.Vaccination, error) {
	var vaccination models.Vaccination
	if err := repo.database.First(&vaccination, id).Error; err != nil {
		return models.Vaccination{}, err
	}
	return vaccination, nil
}

func (repo *VaccinationRepository) ListFiltered(filter RecordFilter) ([]models.Vaccination, error) {
	vaccinations := make([]models.Vaccination, 0)
	query := repo.database.Model(&models.Vaccination{})
	if filter.Category != "" {
		query = query.Where("status = ?", filter.Category)
	}
	if err := applyRecordFilter(query, filter, "created_at").Find(&vaccinations).Error; err != nil {
		return nil, err
	}
	return vaccinations, nil
}

func (repo *VaccinationRepository) Create(vaccination *models.Vaccination) error {
	return repo.database.Create(vaccination).Error
}

func (repo *VaccinationRepository) Save(vaccination *models.Vaccination) error {
	return repo.database.Save(vaccination).Error
}

func (repo *VaccinationRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Vaccination{}, id).Error
}
