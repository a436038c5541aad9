package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationScopeUser  = "user"
	NotificationScopeAdmin = "admin"
)

// Notification is an append-only record read by windowed polling
// queries. UserID is zero for admin-wide notifications.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index" json:"user_id"`
	Scope     string         `gorm:"type:varchar(16);default:'user';index" json:"scope" validate:"oneof=user admin"`
	Type      string         `gorm:"type:varchar(50)" json:"type"`
	Payload   string         `gorm:"type:text" json:"payload"`
	IsRead    bool           `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarkAsRead flags a notification as read.
func (n *Notification) MarkAsRead(db *gorm.DB) error {
	n.IsRead = true
	return db.Model(n).Update("is_read", true).Error
}
