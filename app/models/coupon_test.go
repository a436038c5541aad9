package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testCoupon(maxUses *int) *Coupon {
	now := time.Now()
	return &Coupon{
		ID:       1,
		Code:     "SUMMER10",
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
		MaxUses:  maxUses,
	}
}

func TestCouponWindowContains(t *testing.T) {
	c := testCoupon(nil)

	assert.True(t, c.WindowContains(time.Now()))
	assert.True(t, c.WindowContains(c.StartsAt))
	assert.True(t, c.WindowContains(c.EndsAt))
	assert.False(t, c.WindowContains(c.StartsAt.Add(-time.Second)))
	assert.False(t, c.WindowContains(c.EndsAt.Add(time.Second)))
}

func TestCouponCapReached(t *testing.T) {
	unlimited := testCoupon(nil)
	unlimited.UsedCount = 1000000
	assert.False(t, unlimited.CapReached())

	max := 3
	capped := testCoupon(&max)
	assert.False(t, capped.CapReached())

	capped.UsedCount = 3
	assert.True(t, capped.CapReached())
}

func TestCouponUsableChecksWindowBeforeCap(t *testing.T) {
	max := 1
	c := testCoupon(&max)
	c.UsedCount = 1

	// Both violated: the window error wins.
	err := c.Usable(c.EndsAt.Add(time.Hour))
	assert.ErrorIs(t, err, ErrCouponExpired)

	err = c.Usable(time.Now())
	assert.ErrorIs(t, err, ErrCouponLimitReached)

	c.UsedCount = 0
	assert.NoError(t, c.Usable(time.Now()))
}
