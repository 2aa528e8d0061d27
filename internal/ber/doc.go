// Package ber implements the identifier octets of ASN.1 BER (Basic Encoding
// Rules) as specified in ITU-T X.690, section 8.1.2.
//
// Every BER element starts with one or more identifier octets carrying the
// tag class, the primitive/constructed flag and the tag number. This package
// converts between those octets and the Tag value type. Length and content
// octets are out of its scope.
//
// # Tag Classes
//
// BER uses four tag classes to qualify tag numbers:
//
//   - Universal (0x00): Standard ASN.1 types like INTEGER, BOOLEAN, SEQUENCE
//   - Application (0x40): Application-wide types
//   - Context-specific (0x80): Context-dependent types within a structure
//   - Private (0xC0): Organization-specific types
//
// # Encoding
//
// Tag numbers 0-30 fit in the low five bits of a single octet. Larger
// numbers set those bits to 11111 and follow with big-endian base-128
// octets, bit 8 set on all but the last:
//
//	tag := ber.MustTag(ber.ClassContextSpecific, true, 159)
//	data := ber.EncodeTag(tag) // BF 81 1F
//
// The encoder always produces the minimal number of octets.
//
// # Decoding
//
// ParseTag requires the input to hold exactly one tag:
//
//	tag, err := ber.ParseTag(data)
//	if errors.Is(err, ber.ErrParse) {
//	    // handle error
//	}
//
// DecodeTag reads a tag from the front of a buffer and reports how many
// octets it consumed, leaving the rest to the caller.
//
// By default the decoder rejects non-minimal long-form encodings. Use
// ParseOptions with AllowNonMinimal to accept input from lax encoders.
//
// # Universal Tags
//
// The package defines constants for common universal tag numbers:
//
//   - TagBoolean (0x01): Boolean values
//   - TagInteger (0x02): Integer values
//   - TagOctetString (0x04): Byte strings
//   - TagNull (0x05): Null value
//   - TagOID (0x06): Object identifiers
//   - TagEnumerated (0x0A): Enumerated values
//   - TagSequence (0x10): Ordered collection
//   - TagSet (0x11): Unordered collection
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
package ber
