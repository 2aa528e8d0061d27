// Package ber implements the identifier octets of ASN.1 BER
// as specified in ITU-T X.690.
package ber

import (
	"errors"
	"fmt"

	"github.com/KilimcininKorOglu/asnber/internal/hexutil"
)

// ErrParse is matched by every error returned from tag parsing.
var ErrParse = errors.New("ber: tag parse error")

// Decoder errors
var (
	// ErrNoData is returned when the input is nil or empty.
	ErrNoData = errors.New("no tag data")

	// ErrTruncatedTag is returned when a long-form marker is not followed
	// by any continuation octet.
	ErrTruncatedTag = errors.New("truncated long-form tag")

	// ErrUnterminatedTag is returned when the input ends before the final
	// long-form octet (bit 8 clear).
	ErrUnterminatedTag = errors.New("unterminated long-form tag")

	// ErrTrailingBytes is returned when octets remain after a complete tag.
	ErrTrailingBytes = errors.New("trailing bytes after tag")

	// ErrNonMinimalTag is returned for a long-form tag that could have been
	// encoded in fewer octets.
	ErrNonMinimalTag = errors.New("non-minimal tag encoding")

	// ErrTagOverflow is returned when the tag number does not fit in uint64
	// or the tag exceeds the configured octet limit.
	ErrTagOverflow = errors.New("tag number overflow")
)

// ErrInvalidTagClass is returned when a tag is built from an unknown class.
var ErrInvalidTagClass = errors.New("ber: invalid tag class")

// ParseError provides detailed information about a tag parsing failure.
type ParseError struct {
	Data   []byte // Offending input
	Offset int    // Byte offset where the error was detected
	Err    error  // Underlying cause, one of the decoder errors
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("ber: cannot parse tag: %v", e.Err)
	}
	return fmt.Sprintf("ber: cannot parse tag %s: %v at offset %d", hexutil.Encode(e.Data), e.Err, e.Offset)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is allows ParseError to match ErrParse with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func newParseError(data []byte, offset int, err error) *ParseError {
	return &ParseError{
		Data:   data,
		Offset: offset,
		Err:    err,
	}
}
