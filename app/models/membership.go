package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MembershipStatusActive     = "active"
	MembershipStatusSuperseded = "superseded"
	MembershipStatusCancelled  = "cancelled"
)

// Membership records one fitness-plan subscription period for a user.
// Tier changes supersede the old row instead of mutating it, so the
// full history stays queryable.
type Membership struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tier      string         `gorm:"type:varchar(50);not null" json:"membership_type"`
	Status    string         `gorm:"type:varchar(32);default:'active';index" json:"status"`
	StartsAt  time.Time      `gorm:"type:timestamp" json:"starts_at"`
	EndsAt    time.Time      `gorm:"type:timestamp" json:"ends_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsActiveAt reports whether the membership is active and its validity
// window contains t.
func (m *Membership) IsActiveAt(t time.Time) bool {
	return m.Status == MembershipStatusActive &&
		!t.Before(m.StartsAt) && !t.After(m.EndsAt)
}
