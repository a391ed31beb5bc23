package bqnumeric

import (
	"github.com/shopspring/decimal"

	"github.com/calebcase/bqnumeric/integer"
	"github.com/calebcase/bqnumeric/numeric"
	"github.com/calebcase/bqnumeric/order"
)

// Encode returns the NUMERIC byte string for d.
//
// It fails with a ScaleExceededError if d has more than 9 fractional digits
// and with an OverflowError if d is outside [numeric.MinValue,
// numeric.MaxValue].
func Encode(d decimal.Decimal) (data []byte, err error) {
	err = numeric.Validate(d)
	if err != nil {
		return nil, err
	}

	m, err := numeric.ToMantissa(d)
	if err != nil {
		return nil, err
	}

	data, err = integer.Block{Value: m}.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return order.Reverse(data), nil
}
