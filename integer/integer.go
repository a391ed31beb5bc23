package integer

import (
	"math/big"
)

// Block is a signed integer number.
type Block struct {
	Value *big.Int
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Value == nil {
		return []byte{0}, nil
	}

	return Encode(b.Value), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	b.Value = Decode(data)

	return nil
}

// Encode returns the minimal big-endian two's complement form of i.
func Encode(i *big.Int) (data []byte) {
	// Note: big.Int encodes zero as an empty byte array and always
	// returns a fresh slice, so it is safe to modify in place.
	data = i.Bytes()

	if i.Sign() >= 0 {
		if len(data) == 0 {
			return []byte{0}
		}

		if data[0]&0x80 != 0 {
			data = append([]byte{0x00}, data...)
		}

		return data
	}

	if len(data) == 0 {
		data = []byte{0}
	}

	for k := range data {
		data[k] = ^data[k]
	}

	carry := true
	for k := len(data) - 1; k >= 0 && carry; k-- {
		if data[k] == 0xFF {
			data[k] = 0x00

			continue
		}

		data[k]++
		carry = false
	}

	if carry {
		data = append([]byte{0x01}, data...)
	}

	if data[0]&0x80 == 0 {
		data = append([]byte{0xFF}, data...)
	}

	return data
}

// Decode parses a big-endian two's complement integer. Any byte sequence is
// accepted; an empty one is zero.
func Decode(data []byte) (i *big.Int) {
	i = new(big.Int)

	if len(data) == 0 {
		return i
	}

	if data[0]&0x80 == 0 {
		for len(data) > 1 && data[0] == 0x00 && data[1]&0x80 == 0 {
			data = data[1:]
		}

		return i.SetBytes(data)
	}

	for len(data) > 1 && data[0] == 0xFF && data[1]&0x80 != 0 {
		data = data[1:]
	}

	magnitude := make([]byte, len(data))

	carry := true
	for k := len(data) - 1; k >= 0; k-- {
		b := ^data[k]

		if carry {
			if b == 0xFF {
				b = 0x00
			} else {
				b++
				carry = false
			}
		}

		magnitude[k] = b
	}

	// The sign bit was set, so the complement of the leading byte is at
	// most 0x7F and the carry can never escape.
	i.SetBytes(magnitude)

	return i.Neg(i)
}
