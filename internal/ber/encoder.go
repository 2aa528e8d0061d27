// Package ber implements the identifier octets of ASN.1 BER
// as specified in ITU-T X.690.
package ber

// EncodeTag returns the identifier octets of t.
func EncodeTag(t Tag) []byte {
	return AppendTag(make([]byte, 0, TagSize(t)), t)
}

// AppendTag appends the identifier octets of t to dst and returns the
// extended buffer.
func AppendTag(dst []byte, t Tag) []byte {
	first := byte(t.class)
	if t.constructed {
		first |= constructedBit
	}

	// Short form: tag number fits in 5 bits (0-30)
	if t.number <= maxShortNumber {
		return append(dst, first|byte(t.number))
	}

	// Long form: all 5 bits set, then base-128 tag number
	dst = append(dst, first|longFormMarker)
	return appendBase128(dst, t.number)
}

// TagSize returns the number of identifier octets EncodeTag produces for t.
func TagSize(t Tag) int {
	if t.number <= maxShortNumber {
		return 1
	}
	return 1 + base128Len(t.number)
}

// appendBase128 writes v as big-endian base-128 with the high bit set on
// every octet but the last. No leading 0x80 octet is emitted.
func appendBase128(dst []byte, v uint64) []byte {
	for i := base128Len(v) - 1; i > 0; i-- {
		dst = append(dst, byte(v>>(7*uint(i)))&base128Mask|continuationBit)
	}
	return append(dst, byte(v)&base128Mask)
}

// base128Len returns the minimal number of 7-bit groups needed for v.
func base128Len(v uint64) int {
	n := 1
	for v >>= 7; v > 0; v >>= 7 {
		n++
	}
	return n
}
