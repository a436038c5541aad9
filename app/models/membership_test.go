package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMembershipIsActiveAt(t *testing.T) {
	now := time.Now()
	m := &Membership{
		Status:   MembershipStatusActive,
		StartsAt: now.Add(-24 * time.Hour),
		EndsAt:   now.Add(24 * time.Hour),
	}

	assert.True(t, m.IsActiveAt(now))
	assert.True(t, m.IsActiveAt(m.StartsAt))
	assert.True(t, m.IsActiveAt(m.EndsAt))
	assert.False(t, m.IsActiveAt(m.StartsAt.Add(-time.Minute)))
	assert.False(t, m.IsActiveAt(m.EndsAt.Add(time.Minute)))
}

func TestMembershipSupersededNeverActive(t *testing.T) {
	now := time.Now()
	m := &Membership{
		Status:   MembershipStatusSuperseded,
		StartsAt: now.Add(-24 * time.Hour),
		EndsAt:   now.Add(24 * time.Hour),
	}

	assert.False(t, m.IsActiveAt(now))

	m.Status = MembershipStatusCancelled
	assert.False(t, m.IsActiveAt(now))
}
