package numeric

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var ten = big.NewInt(10)

// ToMantissa returns d × 10^Scale as an integer. It fails rather than round
// when d has more than Scale fractional digits.
func ToMantissa(d decimal.Decimal) (m *big.Int, err error) {
	err = ValidateScale(d)
	if err != nil {
		return nil, err
	}

	m = d.Coefficient()

	shift := int64(d.Exponent()) + int64(Scale)
	if shift > 0 {
		multiplier := new(big.Int).Exp(ten, big.NewInt(shift), nil)
		m.Mul(m, multiplier)
	}

	return m, nil
}

// FromMantissa returns m × 10^-Scale. The result keeps all Scale fractional
// digits.
func FromMantissa(m *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(m, -Scale)
}
