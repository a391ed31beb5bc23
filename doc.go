// Package bqnumeric encodes decimals to and from the byte strings BigQuery
// uses for its NUMERIC type in the Storage Write API.
//
// The equation for a NUMERIC value is:
//
//	number = value * 10 ^ -9
//
// Where number is the decimal and value is a signed integer. For example:
//
//	1.2 = 1_200_000_000 * 10^-9
//
// The value may be up to ±(10^38 - 1), which makes the range of number
// ±99999999999999999999999999999.999999999 (29 integer digits and 9
// fractional digits). Decimals with more than 9 fractional digits are
// rejected rather than rounded. Trailing zeros count: 1.0000000000 has 10
// fractional digits.
//
// # Encoding
//
// The value is written as the shortest big-endian two's complement integer
// that preserves its sign. The bytes are then reversed so the least
// significant byte comes first. There is no header and no length; the byte
// string is exactly as long as the integer needs (1 to 16 bytes for valid
// values).
//
// An empty byte string decodes as zero. Zero encodes as a single zero byte.
//
// Decoding reverses the bytes, reads the two's complement integer and
// divides by 10^9. Every byte string is a valid integer, so decoding only
// fails when the integer is outside the NUMERIC range.
//
// # Examples
//
// 1.2 (4 bytes)
//
//	1_200_000_000 = 0x47_86_8C_00
//
//	| 0         | 1         | 2         | 3         |
//	|-----------|-----------|-----------|-----------|
//	| 0000_0000 | 1000_1100 | 1000_0110 | 0100_0111 | Wire order.
//	|-----------|-----------|-----------|-----------|
//	| 0x00      | 0x8C      | 0x86      | 0x47      |
//
// -1.2 (4 bytes)
//
//	-1_200_000_000 = 0xB8_79_74_00
//
//	| 0         | 1         | 2         | 3         |
//	|-----------|-----------|-----------|-----------|
//	| 0000_0000 | 0111_0100 | 0111_1001 | 1011_1000 | Sign bit is the top bit of the last byte.
//	|-----------|-----------|-----------|-----------|
//	| 0x00      | 0x74      | 0x79      | 0xB8      |
//
// 128 (5 bytes)
//
//	128_000_000_000 = 0x1D_CD_65_00_00
//
//	| 0    | 1    | 2    | 3    | 4    |
//	|------|------|------|------|------|
//	| 0x00 | 0x00 | 0x65 | 0xCD | 0x1D |
//
// 0.000000128 (2 bytes)
//
//	128 = 0x00_80
//
//	| 0    | 1    |
//	|------|------|
//	| 0x80 | 0x00 | The extra zero byte keeps the sign bit clear.
//
// -0.000000128 (1 byte)
//
//	-128 = 0x80
//
//	| 0    |
//	|------|
//	| 0x80 |
package bqnumeric
