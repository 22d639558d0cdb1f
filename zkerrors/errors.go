// Package zkerrors defines the error taxonomy shared by the proof pipeline.
//
// Every failure is returned to the caller wrapping exactly one of the sentinels
// below, so callers can branch with errors.Is.
package zkerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrParse reports a malformed numeric or string input.
	ErrParse = errors.New("parse error")

	// ErrConstraintViolation reports a witness that does not satisfy the circuit.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrSynthesis reports a structural mismatch between witness, circuit and key,
	// or an algebraic failure during setup or proving.
	ErrSynthesis = errors.New("synthesis error")

	// ErrEncoding reports a wire-format serialization failure.
	ErrEncoding = errors.New("encoding error")
)

func Parse(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

func ConstraintViolation(cause error) error {
	return fmt.Errorf("%w: %v", ErrConstraintViolation, cause)
}

// Synthesis wraps cause (which may be nil) with ErrSynthesis and a short reason.
func Synthesis(reason string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrSynthesis, reason)
	}
	return fmt.Errorf("%w: %s::%v", ErrSynthesis, reason, cause)
}

func Encoding(reason string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrEncoding, reason)
	}
	return fmt.Errorf("%w: %s::%v", ErrEncoding, reason, cause)
}
