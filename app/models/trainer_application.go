package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TrainerStatusPending  = "pending"
	TrainerStatusApproved = "approved"
	TrainerStatusRejected = "rejected"
)

type TrainerApplication struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	User       User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name       string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	Email      string         `gorm:"type:varchar(200)" json:"email" validate:"required,email"`
	Specialty  string         `gorm:"type:varchar(100)" json:"specialty" validate:"required,max=100"`
	Experience int            `json:"experience_years" validate:"gte=0,lte=60"`
	Message    string         `gorm:"type:text" json:"message" validate:"max=2000"`
	Status     string         `gorm:"type:varchar(32);default:'pending';index" json:"status"`
	ReviewedBy *uint          `gorm:"default:null" json:"reviewed_by"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsPending reports whether the application still awaits review.
func (a *TrainerApplication) IsPending() bool {
	return a.Status == TrainerStatusPending
}
