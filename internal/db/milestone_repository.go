package db

import (
	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

type MilestoneRepository struct {
	database *gorm.DB
}

func NewMilestoneRepository(database *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{database: database}
}

func (repo *MilestoneRepository) FindByID(id uint) (models.Milestone, error) {
	var milestone models.Milestone
	if err := repo.database.First(&milestone, id).Error; err != nil {
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (repo *MilestoneRepository) ListFiltered(filter RecordFilter) ([]models.Milestone, error) {
	milestones := make([]models.Milestone, 0)
	query := repo.database.Model(&models.Milestone{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if err := applyRecordFilter(query, filter, "created_at").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (repo *MilestoneRepository) Create(milestone *models.Milestone) error {
	return repo.database.Create(milestone).Error
}

func (repo *MilestoneRepository) Save(milestone *models.Milestone) error {
	return repo.database.Save(milestone).Error
}

func (repo *MilestoneRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Milestone{}, id).Error
}
