package plans

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(TierBasic))
	assert.True(t, Valid(TierPremium))
	assert.True(t, Valid(TierElite))
	assert.False(t, Valid(Tier("platinum")))
	assert.False(t, Valid(Tier("")))
}

func TestPrice(t *testing.T) {
	assert.True(t, Price(TierPremium).Equal(decimal.RequireFromString("49.99")))
	assert.True(t, Price(Tier("nope")).IsZero())
}

func TestDurationDays(t *testing.T) {
	assert.Equal(t, 30, DurationDays(TierBasic))
	assert.Equal(t, 0, DurationDays(Tier("nope")))
}

func TestAllOrdered(t *testing.T) {
	tiers := All()
	assert.Equal(t, []Tier{TierBasic, TierPremium, TierElite}, tiers)
	for i := 1; i < len(tiers); i++ {
		assert.True(t, Price(tiers[i-1]).LessThan(Price(tiers[i])))
	}
}
