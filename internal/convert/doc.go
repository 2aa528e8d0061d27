// Package convert maps content octets of BER elements to typed logical
// values and back.
//
// Each logical type has its own stateless Converter implementation:
//
//	v, err := convert.Boolean{}.Decode([]byte{0xFF}) // *v == true
//	raw, err := convert.Integer{}.Encode(&n)
//
// A nil byte slice and a nil pointer both mean "no value" and are passed
// through unchanged in either direction. Malformed input yields a
// *ConversionError that matches ErrConversion.
//
// Converters can be looked up by name through a Registry, which works on
// untyped values:
//
//	codec, err := convert.DefaultRegistry().Lookup("boolean")
//	v, err := codec.DecodeValue(raw) // v is bool, or nil
package convert
