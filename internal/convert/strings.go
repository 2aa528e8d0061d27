package convert

import "unicode/utf8"

// OctetString converts OCTET STRING content octets. Both directions copy,
// so the result never aliases the input.
type OctetString struct{}

// Decode implements Converter.
func (OctetString) Decode(raw []byte) (*[]byte, error) {
	if raw == nil {
		return nil, nil
	}
	v := append([]byte{}, raw...)
	return &v, nil
}

// Encode implements Converter.
func (OctetString) Encode(v *[]byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return append([]byte{}, *v...), nil
}

// UTF8String converts UTF8String content octets.
type UTF8String struct{}

// Decode implements Converter.
func (UTF8String) Decode(raw []byte) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	if !utf8.Valid(raw) {
		return nil, newConversionError("utf8string", raw, ErrInvalidValue, "invalid UTF-8")
	}
	v := string(raw)
	return &v, nil
}

// Encode implements Converter.
func (UTF8String) Encode(v *string) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	if !utf8.ValidString(*v) {
		return nil, newConversionError("utf8string", nil, ErrUnsupportedValue, "invalid UTF-8 in %q", *v)
	}
	return []byte(*v), nil
}
