package bqnumeric

import (
	"github.com/shopspring/decimal"

	"github.com/calebcase/bqnumeric/integer"
	"github.com/calebcase/bqnumeric/numeric"
	"github.com/calebcase/bqnumeric/order"
)

// Decode parses a NUMERIC byte string. The result always has 9 fractional
// digits. An empty byte string is zero.
//
// Any byte string decodes to some integer, so the only failure is an
// OverflowError when that integer is outside the NUMERIC range.
func Decode(data []byte) (d decimal.Decimal, err error) {
	blk := &integer.Block{}

	err = blk.UnmarshalBinary(order.Reverse(data))
	if err != nil {
		return decimal.Decimal{}, err
	}

	d = numeric.FromMantissa(blk.Value)

	err = numeric.ValidateBounds(d)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return d, nil
}
