package numeric

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("numeric")

// ScaleExceededError is returned when a decimal has more fractional digits
// than the NUMERIC type can hold.
type ScaleExceededError struct {
	Actual int32
	Max    int32
}

func (e *ScaleExceededError) Error() string {
	return fmt.Sprintf("scale exceeds maximum: %d (allowed: %d)", e.Actual, e.Max)
}

// OverflowError is returned when a decimal lies outside [MinValue, MaxValue].
// Value is the offending decimal in string form.
type OverflowError struct {
	Value string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("numeric overflow: %s", e.Value)
}
