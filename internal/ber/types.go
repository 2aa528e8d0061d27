// Package ber implements the identifier octets of ASN.1 BER
// as specified in ITU-T X.690.
package ber

import (
	"fmt"
	"strings"
)

// Class is the tag class held in bits 8-7 of the first identifier octet.
type Class uint8

// Tag class constants (bits 8-7 of the tag byte)
const (
	ClassUniversal       Class = 0x00 // 00xxxxxx
	ClassApplication     Class = 0x40 // 01xxxxxx
	ClassContextSpecific Class = 0x80 // 10xxxxxx
	ClassPrivate         Class = 0xC0 // 11xxxxxx
)

// Identifier octet layout
const (
	classMask       = 0xC0
	constructedBit  = 0x20 // xx1xxxxx
	numberMask      = 0x1F
	longFormMarker  = 0x1F // xxx11111
	maxShortNumber  = 30
	continuationBit = 0x80
	base128Mask     = 0x7F
)

// Universal tag numbers for primitive and constructed types
const (
	TagBoolean     = 0x01
	TagInteger     = 0x02
	TagBitString   = 0x03
	TagOctetString = 0x04
	TagNull        = 0x05
	TagOID         = 0x06
	TagEnumerated  = 0x0A
	TagUTF8String  = 0x0C
	TagSequence    = 0x10
	TagSet         = 0x11
)

// Valid reports whether c is one of the four tag classes.
func (c Class) Valid() bool {
	switch c {
	case ClassUniversal, ClassApplication, ClassContextSpecific, ClassPrivate:
		return true
	}
	return false
}

// String returns the upper-case class name.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	default:
		return fmt.Sprintf("Class(%#02x)", uint8(c))
	}
}

// ParseClass parses a class name. Matching is case-insensitive and accepts
// "context-specific" as well as "context".
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "universal":
		return ClassUniversal, nil
	case "application":
		return ClassApplication, nil
	case "context", "context-specific":
		return ClassContextSpecific, nil
	case "private":
		return ClassPrivate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTagClass, s)
}

// Tag is the decoded form of the identifier octets of one BER element.
// Tag values are immutable and comparable with ==. The zero value is
// the UNIVERSAL primitive tag number 0.
type Tag struct {
	class       Class
	constructed bool
	number      uint64
}

// NewTag returns a tag for the given class, constructed flag and number.
func NewTag(class Class, constructed bool, number uint64) (Tag, error) {
	if !class.Valid() {
		return Tag{}, ErrInvalidTagClass
	}
	return Tag{class: class, constructed: constructed, number: number}, nil
}

// MustTag is like NewTag but panics on an invalid class.
func MustTag(class Class, constructed bool, number uint64) Tag {
	t, err := NewTag(class, constructed, number)
	if err != nil {
		panic(err)
	}
	return t
}

// Class returns the tag class.
func (t Tag) Class() Class {
	return t.class
}

// Constructed reports whether the element content consists of nested elements.
func (t Tag) Constructed() bool {
	return t.constructed
}

// Number returns the tag number.
func (t Tag) Number() uint64 {
	return t.number
}

// String renders t as "[CLASS number]/c" for constructed tags and
// "[CLASS number]/p" for primitive ones.
func (t Tag) String() string {
	form := "p"
	if t.constructed {
		form = "c"
	}
	return fmt.Sprintf("[%s %d]/%s", t.class, t.number, form)
}
