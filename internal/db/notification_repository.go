package db

import (
	"github.com/cradlehq/cradle/internal/models"
	"gorm.io/gorm"
)

// NotificationFilter narrows a user's notification feed.
type NotificationFilter struct {
	UnreadOnly bool
	Type       string
	BabyID     *uint
	Limit      int
}

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) FindByIDForUser(id uint, userID uint) (models.Notification, error) {
	var notification models.Notification
	if err := repo.database.
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (repo *NotificationRepository) ListForUser(userID uint, filter NotificationFilter) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	query := repo.database.Where("user_id = ?", userID)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.BabyID != nil {
		query = query.Where("baby_id = ?", *filter.BabyID)
	}
	query = query.Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) Save(notification *models.Notification) error {
	return repo.database.Save(notification).Error
}

// MarkAllRead flips every unread notification for the user and reports
// how many rows changed.
func (repo *NotificationRepository) MarkAllRead(userID uint) (int64, error) {
	result := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (repo *NotificationRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Notification{}, id).Error
}
