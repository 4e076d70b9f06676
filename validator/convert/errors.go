// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package convert

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField         = errors.New("missing field")
	ErrInvalidLength        = errors.New("invalid length")
	ErrInvalidEnumValue     = errors.New("invalid enum value")
	ErrInvalidSumVariant    = errors.New("invalid sum variant")
	ErrInvalidIndexEncoding = errors.New("invalid index encoding")
)

// MissingFieldError reports a required wire field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidLengthError reports a byte string or sequence of the wrong length for
// the domain type it was converted to.
type InvalidLengthError struct {
	Type     string
	Expected int
	Actual   int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length for %s: expected %d, got %d", e.Type, e.Expected, e.Actual)
}

func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

type InvalidEnumValueError struct {
	Type string
	Tag  uint32
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value %d", e.Type, e.Tag)
}

func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// InvalidIndexEncodingError wraps the decoding failure of a structured index.
type InvalidIndexEncodingError struct {
	Type  string
	Cause error
}

func (e *InvalidIndexEncodingError) Error() string {
	return fmt.Sprintf("invalid %s encoding: %v", e.Type, e.Cause)
}

func (e *InvalidIndexEncodingError) Is(target error) bool {
	return target == ErrInvalidIndexEncoding
}

func (e *InvalidIndexEncodingError) Unwrap() error {
	return e.Cause
}
