// Package numeric holds the fixed parameters of the NUMERIC type and the
// checks and conversions between decimals and their scaled integer form.
package numeric

import (
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits stored by NUMERIC.
const Scale int32 = 9

var (
	maxValue = decimal.RequireFromString("99999999999999999999999999999.999999999")
	minValue = maxValue.Neg()
)

// MaxValue returns the largest NUMERIC value, 10^29 - 10^-9.
func MaxValue() decimal.Decimal {
	return maxValue
}

// MinValue returns the smallest NUMERIC value, -(10^29 - 10^-9).
func MinValue() decimal.Decimal {
	return minValue
}
