// Package coupons implements coupon redemption with an atomic usage
// counter.
package coupons

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
)

// Repository provides the DB operations used by the coupon service.
type Repository interface {
	GetByID(id uint) (*models.Coupon, error)
	IncrementUsage(id uint) (bool, error)
}

// Service validates redemption preconditions and consumes one use.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a coupon service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ApplyUsage redeems one use of the coupon. Preconditions run in
// order: existence, validity window, usage cap. The increment itself
// is a single conditional update at the storage layer, so a passing
// cap read can still lose the race to a concurrent redeemer; that case
// reports the limit as reached without mutating anything.
func (s *Service) ApplyUsage(ctx context.Context, couponID uint) (int, error) {
	coupon, err := s.repo.GetByID(couponID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrCouponNotFound
		}
		return 0, err
	}

	if err := coupon.Usable(s.now().UTC()); err != nil {
		return 0, err
	}

	updated, err := s.repo.IncrementUsage(coupon.ID)
	if err != nil {
		return 0, err
	}
	if !updated {
		return 0, models.ErrCouponLimitReached
	}

	return coupon.UsedCount + 1, nil
}
