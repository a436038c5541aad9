package coupons

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
)

type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons map[uint]*models.Coupon
}

func newFakeCouponRepo(coupons ...*models.Coupon) *fakeCouponRepo {
	r := &fakeCouponRepo{coupons: make(map[uint]*models.Coupon)}
	for _, c := range coupons {
		r.coupons[c.ID] = c
	}
	return r
}

func (r *fakeCouponRepo) GetByID(id uint) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.coupons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCouponRepo) IncrementUsage(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.coupons[id]
	if !ok {
		return false, nil
	}
	if c.MaxUses != nil && c.UsedCount >= *c.MaxUses {
		return false, nil
	}
	c.UsedCount++
	return true, nil
}

func (r *fakeCouponRepo) usedCount(id uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coupons[id].UsedCount
}

func intPtr(v int) *int { return &v }

func validCoupon(id uint, maxUses *int) *models.Coupon {
	now := time.Now().UTC()
	return &models.Coupon{
		ID:       id,
		Code:     "SUMMER10",
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
		MaxUses:  maxUses,
	}
}

func TestApplyUsageConsumesUpToCap(t *testing.T) {
	repo := newFakeCouponRepo(validCoupon(1, intPtr(2)))
	svc := NewService(repo)

	uses, err := svc.ApplyUsage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, uses)

	uses, err = svc.ApplyUsage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, uses)

	_, err = svc.ApplyUsage(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrCouponLimitReached)
	assert.Equal(t, 2, repo.usedCount(1))
}

func TestApplyUsageUnlimitedWithoutCap(t *testing.T) {
	repo := newFakeCouponRepo(validCoupon(1, nil))
	svc := NewService(repo)

	for i := 1; i <= 5; i++ {
		uses, err := svc.ApplyUsage(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, i, uses)
	}
}

func TestApplyUsageUnknownCoupon(t *testing.T) {
	svc := NewService(newFakeCouponRepo())

	_, err := svc.ApplyUsage(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrCouponNotFound)
}

func TestApplyUsageOutsideWindow(t *testing.T) {
	now := time.Now().UTC()

	expired := validCoupon(1, nil)
	expired.StartsAt = now.Add(-48 * time.Hour)
	expired.EndsAt = now.Add(-24 * time.Hour)

	notYet := validCoupon(2, nil)
	notYet.StartsAt = now.Add(24 * time.Hour)
	notYet.EndsAt = now.Add(48 * time.Hour)

	repo := newFakeCouponRepo(expired, notYet)
	svc := NewService(repo)

	_, err := svc.ApplyUsage(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrCouponExpired)
	assert.Equal(t, 0, repo.usedCount(1))

	_, err = svc.ApplyUsage(context.Background(), 2)
	assert.ErrorIs(t, err, models.ErrCouponExpired)
	assert.Equal(t, 0, repo.usedCount(2))
}

func TestApplyUsageConcurrentRedemptionRespectsCap(t *testing.T) {
	const maxUses = 10
	const attempts = 50

	repo := newFakeCouponRepo(validCoupon(1, intPtr(maxUses)))
	svc := NewService(repo)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.ApplyUsage(context.Background(), 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, maxUses, succeeded)
	assert.Equal(t, maxUses, repo.usedCount(1))
}
