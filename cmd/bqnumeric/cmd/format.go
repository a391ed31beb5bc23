package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Format is the notation used for byte strings on the command line.
type Format string

// Byte String Formats
const (
	FormatHex    Format = "hex"
	FormatBase64 Format = "base64"
	FormatBytes  Format = "bytes"
)

var _ pflag.Value = (*Format)(nil)

func (f Format) String() string {
	return string(f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	switch Format(s) {
	case FormatHex, FormatBase64, FormatBytes:
		*f = Format(s)

		return nil
	}

	return Error.New("unknown format: %q (want hex, base64 or bytes)", s)
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Render writes data in this format.
func (f Format) Render(data []byte) string {
	switch f {
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(data)
	case FormatBytes:
		return fmt.Sprint(data)
	default:
		return hex.EncodeToString(data)
	}
}

// Parse reads data written in this format. The bytes format accepts decimal
// byte values separated by spaces or commas, optionally in brackets.
func (f Format) Parse(s string) (data []byte, err error) {
	defer Error.WrapP(&err)

	switch f {
	case FormatBase64:
		return base64.StdEncoding.DecodeString(s)
	case FormatBytes:
		s = strings.Trim(s, "[]")

		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' '
		})

		data = make([]byte, 0, len(fields))
		for _, field := range fields {
			b, err := strconv.ParseUint(field, 10, 8)
			if err != nil {
				return nil, err
			}

			data = append(data, byte(b))
		}

		return data, nil
	default:
		return hex.DecodeString(s)
	}
}

func addFormatFlag(fs *pflag.FlagSet, f *Format) {
	fs.VarP(f, "format", "f", "byte string notation: hex, base64 or bytes")
}
