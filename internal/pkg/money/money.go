// Package money converts decimal currency values at the JSON response
// boundary. Amounts are stored as DECIMAL(10,2); responses carry plain
// numbers rounded to the currency's minor unit so no float drift leaks
// back into persisted values.
package money

import "github.com/shopspring/decimal"

// minorUnits maps ISO currency codes to their minor-unit digits.
// Everything not listed uses two digits.
var minorUnits = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"BHD": 3,
	"KWD": 3,
}

// MinorUnits returns the number of minor-unit digits for a currency code.
func MinorUnits(currency string) int32 {
	if d, ok := minorUnits[currency]; ok {
		return d
	}
	return 2
}

// Round rounds an amount to the currency's minor unit.
func Round(d decimal.Decimal, currency string) decimal.Decimal {
	return d.Round(MinorUnits(currency))
}

// Amount converts a decimal amount to the plain number serialized in
// JSON responses, rounded to the currency's minor unit.
func Amount(d decimal.Decimal, currency string) float64 {
	f, _ := Round(d, currency).Float64()
	return f
}

// FromFloat parses a request-supplied number into a decimal rounded to
// the currency's minor unit.
func FromFloat(v float64, currency string) decimal.Decimal {
	return Round(decimal.NewFromFloat(v), currency)
}
