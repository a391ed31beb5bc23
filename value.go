package bqnumeric

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/calebcase/bqnumeric/numeric"
)

// Numeric is a decimal that marshals to the NUMERIC byte string. Text, JSON
// and gob decoding validate the value. Scan and Value are the embedded
// decimal's and are not range checked.
type Numeric struct {
	decimal.Decimal
}

// NewFromString parses and validates a NUMERIC value.
func NewFromString(s string) (n Numeric, err error) {
	err = n.UnmarshalText([]byte(s))

	return n, err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n Numeric) MarshalBinary() (data []byte, err error) {
	return Encode(n.Decimal)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Numeric) UnmarshalBinary(data []byte) (err error) {
	d, err := Decode(data)
	if err != nil {
		return err
	}

	n.Decimal = d

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Numeric) MarshalText() (text []byte, err error) {
	err = numeric.Validate(n.Decimal)
	if err != nil {
		return nil, err
	}

	return []byte(n.Decimal.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// valid NUMERIC value.
func (n *Numeric) UnmarshalText(text []byte) (err error) {
	d, err := decimal.NewFromString(string(text))
	if err != nil {
		return numeric.Error.Wrap(err)
	}

	err = numeric.Validate(d)
	if err != nil {
		return err
	}

	n.Decimal = d

	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Both quoted and bare numbers
// are accepted; null leaves n unchanged.
func (n *Numeric) UnmarshalJSON(data []byte) (err error) {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if len(text) > 0 && text[0] == '"' {
		text, err = strconv.Unquote(text)
		if err != nil {
			return numeric.Error.Wrap(err)
		}
	}

	return n.UnmarshalText([]byte(text))
}

// GobEncode implements gob.GobEncoder using the NUMERIC byte string.
func (n Numeric) GobEncode() (data []byte, err error) {
	return n.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (n *Numeric) GobDecode(data []byte) (err error) {
	return n.UnmarshalBinary(data)
}
