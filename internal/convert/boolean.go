package convert

// Boolean converts BOOLEAN content octets. FALSE is 0x00 and TRUE is 0xFF;
// decoding rejects every other octet.
type Boolean struct{}

const (
	booleanFalse = 0x00
	booleanTrue  = 0xFF
)

// Decode implements Converter.
func (Boolean) Decode(raw []byte) (*bool, error) {
	if raw == nil {
		return nil, nil
	}
	if len(raw) != 1 {
		return nil, newConversionError("boolean", raw, ErrInvalidLength, "expected 1 byte, got %d", len(raw))
	}

	var v bool
	switch raw[0] {
	case booleanFalse:
		v = false
	case booleanTrue:
		v = true
	default:
		return nil, newConversionError("boolean", raw, ErrInvalidValue, "does not represent a boolean")
	}
	return &v, nil
}

// Encode implements Converter.
func (Boolean) Encode(v *bool) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	if *v {
		return []byte{booleanTrue}, nil
	}
	return []byte{booleanFalse}, nil
}
