// Package hexutil renders octets as hexadecimal text for diagnostics and
// parses hexadecimal input from the command line and test fixtures.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrOddLength is returned when the input has an odd number of hex digits.
var ErrOddLength = errors.New("hexutil: odd number of hex digits")

// Encode returns the uppercase hexadecimal form of b with no separators.
// A nil or empty slice renders as the empty string.
func Encode(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Decode parses hexadecimal text. Digits may be upper or lower case.
// Whitespace, ':' and '-' separators and "0x" prefixes are ignored.
func Decode(s string) ([]byte, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, field := range strings.FieldsFunc(s, isSeparator) {
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		sb.WriteString(field)
	}

	digits := sb.String()
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrOddLength, s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("hexutil: %q: %w", s, err)
	}
	return b, nil
}

// MustDecode is like Decode but panics on malformed input.
// It is intended for constants and test fixtures.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ':', '-':
		return true
	}
	return false
}
