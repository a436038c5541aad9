package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
)

// notificationRepository implements the NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// ListForUser returns user-scoped notifications created after since,
// newest first.
func (r *notificationRepository) ListForUser(userID uint, since time.Time, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("scope = ? AND user_id = ? AND created_at >= ?",
		models.NotificationScopeUser, userID, since).
		Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

// ListAdmin returns admin-wide notifications created after since,
// newest first.
func (r *notificationRepository) ListAdmin(since time.Time, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("scope = ? AND created_at >= ?",
		models.NotificationScopeAdmin, since).
		Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

// MarkRead flags a notification read, scoped to its owner so one user
// cannot touch another's feed.
func (r *notificationRepository) MarkRead(id, userID uint) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
