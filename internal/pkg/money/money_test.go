package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountRoundsToMinorUnit(t *testing.T) {
	d := decimal.RequireFromString("49.999")
	assert.Equal(t, 50.0, Amount(d, "USD"))

	d = decimal.RequireFromString("49.99")
	assert.Equal(t, 49.99, Amount(d, "USD"))
}

func TestAmountZeroMinorUnitCurrency(t *testing.T) {
	d := decimal.RequireFromString("1200.49")
	assert.Equal(t, 1200.0, Amount(d, "JPY"))
}

func TestFromFloatRoundTrip(t *testing.T) {
	d := FromFloat(49.99, "USD")
	assert.True(t, d.Equal(decimal.RequireFromString("49.99")))
	assert.Equal(t, 49.99, Amount(d, "USD"))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int32(2), MinorUnits("EUR"))
	assert.Equal(t, int32(0), MinorUnits("JPY"))
	assert.Equal(t, int32(3), MinorUnits("KWD"))
}
