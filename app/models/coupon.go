package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Coupon is a redeemable discount with a validity window and an optional
// usage cap. UsedCount never exceeds MaxUses when MaxUses is set; the
// repository enforces that with a conditional increment.
type Coupon struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Code      string          `gorm:"uniqueIndex;type:varchar(50)" json:"code" validate:"required,min=3,max=50"`
	Discount  decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	StartsAt  time.Time       `gorm:"type:timestamp" json:"starts_at"`
	EndsAt    time.Time       `gorm:"type:timestamp" json:"ends_at"`
	MaxUses   *int            `gorm:"default:null" json:"max_uses"`
	UsedCount int             `gorm:"default:0" json:"used_count"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// WindowContains reports whether t falls inside the validity window.
func (c *Coupon) WindowContains(t time.Time) bool {
	return !t.Before(c.StartsAt) && !t.After(c.EndsAt)
}

// CapReached reports whether the usage cap is exhausted. A nil MaxUses
// means unlimited redemptions.
func (c *Coupon) CapReached() bool {
	return c.MaxUses != nil && c.UsedCount >= *c.MaxUses
}

// Usable checks the redemption preconditions in order: window first,
// then cap. Existence is checked by the repository lookup.
func (c *Coupon) Usable(now time.Time) error {
	if !c.WindowContains(now) {
		return ErrCouponExpired
	}
	if c.CapReached() {
		return ErrCouponLimitReached
	}
	return nil
}
