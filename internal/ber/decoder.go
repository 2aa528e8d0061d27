// Package ber implements the identifier octets of ASN.1 BER
// as specified in ITU-T X.690.
package ber

import "math"

// ParseOptions controls how strictly identifier octets are validated.
// The zero value is the strict default used by ParseTag and DecodeTag.
type ParseOptions struct {
	// AllowNonMinimal accepts long-form tags with a leading 0x80 octet and
	// long-form encodings of tag numbers 0-30.
	AllowNonMinimal bool

	// MaxOctets caps the total number of identifier octets, including the
	// first one. Zero means no limit beyond what fits in uint64.
	MaxOctets int
}

// ParseTag parses data as exactly one tag using strict options.
func ParseTag(data []byte) (Tag, error) {
	return ParseOptions{}.ParseTag(data)
}

// DecodeTag parses the tag at the front of data using strict options and
// returns the number of octets it occupies. Trailing octets are ignored.
func DecodeTag(data []byte) (Tag, int, error) {
	return ParseOptions{}.DecodeTag(data)
}

// ParseTag parses data as exactly one tag. Octets left over after a
// structurally complete tag are an error.
func (o ParseOptions) ParseTag(data []byte) (Tag, error) {
	t, n, err := o.decode(data)
	if err != nil {
		return Tag{}, err
	}
	if n != len(data) {
		return Tag{}, newParseError(data, n, ErrTrailingBytes)
	}
	if err := o.checkMinimal(data, t); err != nil {
		return Tag{}, err
	}
	return t, nil
}

// DecodeTag parses the tag at the front of data and returns the number of
// octets consumed.
func (o ParseOptions) DecodeTag(data []byte) (Tag, int, error) {
	t, n, err := o.decode(data)
	if err != nil {
		return Tag{}, 0, err
	}
	if err := o.checkMinimal(data, t); err != nil {
		return Tag{}, 0, err
	}
	return t, n, nil
}

func (o ParseOptions) decode(data []byte) (Tag, int, error) {
	if len(data) == 0 {
		return Tag{}, 0, newParseError(data, 0, ErrNoData)
	}

	first := data[0]
	t := Tag{
		class:       Class(first & classMask),
		constructed: first&constructedBit != 0,
		number:      uint64(first & numberMask),
	}

	if t.number != longFormMarker {
		return t, 1, nil
	}

	if len(data) < 2 {
		return Tag{}, 0, newParseError(data, 1, ErrTruncatedTag)
	}

	number, n, err := o.readBase128(data)
	if err != nil {
		return Tag{}, 0, err
	}
	t.number = number
	return t, n, nil
}

// checkMinimal rejects long-form tags with a leading zero group or a
// number that fits the short form. data must hold the tag t at its front.
func (o ParseOptions) checkMinimal(data []byte, t Tag) error {
	if o.AllowNonMinimal || data[0]&numberMask != longFormMarker {
		return nil
	}
	if data[1] == continuationBit || t.number <= maxShortNumber {
		return newParseError(data, 1, ErrNonMinimalTag)
	}
	return nil
}

// readBase128 reads the long-form tag number that starts at data[1] and
// returns it along with the total octets consumed, first octet included.
func (o ParseOptions) readBase128(data []byte) (uint64, int, error) {
	var result uint64
	for offset := 1; offset < len(data); offset++ {
		if o.MaxOctets > 0 && offset >= o.MaxOctets {
			return 0, 0, newParseError(data, offset, ErrTagOverflow)
		}

		// Check for overflow before shifting
		if result > math.MaxUint64>>7 {
			return 0, 0, newParseError(data, offset, ErrTagOverflow)
		}

		b := data[offset]
		result = result<<7 | uint64(b&base128Mask)

		// If high bit is not set, this is the last byte
		if b&continuationBit == 0 {
			return result, offset + 1, nil
		}
	}
	return 0, 0, newParseError(data, len(data), ErrUnterminatedTag)
}
