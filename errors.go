// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
)

// ErrorKind classifies parsing failures.
// Each kind is an error itself, so errors.Is(err, UnknownSuffix) can be used
// to check a returned *NumberError.
type ErrorKind int

const (
	// InvalidMantissa means the numeric part failed to parse or was negative.
	InvalidMantissa ErrorKind = iota + 1
	// UnknownSuffix means the trailing letters do not match any magnitude suffix.
	UnknownSuffix
	// InvalidExponent means the exponent of an exponential form is not an integer.
	InvalidExponent
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidMantissa:
		return "invalid mantissa"
	case UnknownSuffix:
		return "unknown suffix"
	case InvalidExponent:
		return "invalid exponent"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// NumberError is returned, if a string can not be parsed into a Number.
type NumberError struct {
	Kind  ErrorKind
	Input string
	Err   error
}

func newNumberError(kind ErrorKind, input string, err error) *NumberError {
	return &NumberError{Kind: kind, Input: input, Err: err}
}

func (e *NumberError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parsing %q failed: %s", e.Input, e.Kind)
	}
	return fmt.Sprintf("parsing %q failed: %s: %v", e.Input, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *NumberError) Unwrap() error {
	return e.Err
}

// Is reports whether target is e's kind.
func (e *NumberError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}
