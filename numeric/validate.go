package numeric

import (
	"github.com/shopspring/decimal"
)

// FractionalDigits returns the number of digits after the decimal point as
// written, trailing zeros included.
func FractionalDigits(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}

	return 0
}

// Validate checks both the scale and the bounds of d.
func Validate(d decimal.Decimal) (err error) {
	err = ValidateScale(d)
	if err != nil {
		return err
	}

	return ValidateBounds(d)
}

// ValidateScale fails with a ScaleExceededError if d has more than Scale
// fractional digits. No rounding is attempted.
func ValidateScale(d decimal.Decimal) (err error) {
	if digits := FractionalDigits(d); digits > Scale {
		return Error.Wrap(&ScaleExceededError{
			Actual: digits,
			Max:    Scale,
		})
	}

	return nil
}

// ValidateBounds fails with an OverflowError if d is outside the inclusive
// range [MinValue, MaxValue].
func ValidateBounds(d decimal.Decimal) (err error) {
	if d.Cmp(minValue) < 0 || d.Cmp(maxValue) > 0 {
		return Error.Wrap(&OverflowError{
			Value: d.String(),
		})
	}

	return nil
}
