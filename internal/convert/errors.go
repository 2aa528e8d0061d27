package convert

import (
	"errors"
	"fmt"

	"github.com/KilimcininKorOglu/asnber/internal/hexutil"
)

// ErrConversion is matched by every error a converter returns.
var ErrConversion = errors.New("convert: conversion error")

// Converter errors
var (
	// ErrInvalidLength is returned when raw octets have the wrong length
	// for the logical type.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when raw octets have the right length but
	// do not represent a value of the logical type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedValue is returned when a logical value cannot be
	// represented.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Registry errors
var (
	ErrUnknownType   = errors.New("convert: unknown type")
	ErrDuplicateType = errors.New("convert: type already registered")
	ErrEmptyTypeName = errors.New("convert: empty type name")
)

// ConversionError provides detailed information about a conversion failure.
type ConversionError struct {
	Type    string // Logical type name, e.g. "boolean"
	Data    []byte // Offending raw octets, nil when encoding
	Message string // Human-readable description
	Err     error  // Underlying cause, one of the converter errors
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("convert: %s: %s: %s", e.Type, hexutil.Encode(e.Data), e.Message)
	}
	return fmt.Sprintf("convert: %s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is allows ConversionError to match ErrConversion with errors.Is.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

func newConversionError(typ string, data []byte, err error, format string, args ...any) *ConversionError {
	return &ConversionError{
		Type:    typ,
		Data:    data,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
