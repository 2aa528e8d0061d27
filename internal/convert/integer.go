package convert

// Integer converts INTEGER content octets: a big-endian two's complement
// value in the minimum number of octets, at most eight.
type Integer struct{}

// Enumerated converts ENUMERATED content octets, which use the INTEGER
// encoding. Its errors carry the enumerated type name.
type Enumerated struct{}

const maxIntegerOctets = 8

// Decode implements Converter.
func (Integer) Decode(raw []byte) (*int64, error) {
	return decodeIntegerContent(TypeInteger, raw)
}

// Encode implements Converter.
func (Integer) Encode(v *int64) ([]byte, error) {
	return encodeIntegerContent(v), nil
}

// Decode implements Converter.
func (Enumerated) Decode(raw []byte) (*int64, error) {
	return decodeIntegerContent(TypeEnumerated, raw)
}

// Encode implements Converter.
func (Enumerated) Encode(v *int64) ([]byte, error) {
	return encodeIntegerContent(v), nil
}

func decodeIntegerContent(typ string, raw []byte) (*int64, error) {
	if raw == nil {
		return nil, nil
	}

	// Integer must have at least 1 byte
	if len(raw) == 0 {
		return nil, newConversionError(typ, raw, ErrInvalidLength, "must have at least 1 byte")
	}
	if len(raw) > maxIntegerOctets {
		return nil, newConversionError(typ, raw, ErrInvalidLength, "too large for int64")
	}

	// The first 9 bits must not be all zeros or all ones
	if len(raw) > 1 {
		if (raw[0] == 0x00 && raw[1]&0x80 == 0) || (raw[0] == 0xFF && raw[1]&0x80 != 0) {
			return nil, newConversionError(typ, raw, ErrInvalidValue, "non-minimal integer encoding")
		}
	}

	v := decodeInteger(raw)
	return &v, nil
}

func encodeIntegerContent(v *int64) []byte {
	if v == nil {
		return nil
	}
	return encodeInteger(*v)
}

// decodeInteger decodes a two's complement integer of 1-8 octets.
func decodeInteger(raw []byte) int64 {
	var result int64

	// If high bit is set, the number is negative (two's complement)
	if raw[0]&0x80 != 0 {
		// Start with all bits set for sign extension
		result = -1
	}

	for _, b := range raw {
		result = result<<8 | int64(b)
	}
	return result
}

// encodeInteger encodes an int64 as a minimal two's complement byte slice.
func encodeInteger(v int64) []byte {
	n := 1
	for n < maxIntegerOctets {
		// Stop once the remaining high octets are pure sign extension
		rest := v >> (8*uint(n) - 1)
		if rest == 0 || rest == -1 {
			break
		}
		n++
	}

	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}
