// Package plans is the membership tier catalog: which tiers exist, what
// they cost and how long a paid period runs.
package plans

import (
	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
	TierElite   Tier = "elite"
)

type tierSpec struct {
	price        decimal.Decimal
	durationDays int
	displayName  string
}

var catalog = map[Tier]tierSpec{
	TierBasic:   {price: decimal.New(1999, -2), durationDays: 30, displayName: "Basic"},
	TierPremium: {price: decimal.New(4999, -2), durationDays: 30, displayName: "Premium"},
	TierElite:   {price: decimal.New(8999, -2), durationDays: 30, displayName: "Elite"},
}

// Valid reports whether the tier is part of the catalog.
func Valid(t Tier) bool {
	_, ok := catalog[t]
	return ok
}

// Price returns the list price for a tier, zero for unknown tiers.
func Price(t Tier) decimal.Decimal {
	if spec, ok := catalog[t]; ok {
		return spec.price
	}
	return decimal.Zero
}

// DurationDays returns the paid period length for a tier.
func DurationDays(t Tier) int {
	if spec, ok := catalog[t]; ok {
		return spec.durationDays
	}
	return 0
}

// DisplayName returns the human-readable tier name.
func DisplayName(t Tier) string {
	if spec, ok := catalog[t]; ok {
		return spec.displayName
	}
	return string(t)
}

// All lists the known tiers in ascending price order.
func All() []Tier {
	return []Tier{TierBasic, TierPremium, TierElite}
}
