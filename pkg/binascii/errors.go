package binascii

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fixed-message validation failures. Compare with
// errors.Is.
var (
	// ErrNonASCII is returned when a string input contains a character
	// outside the 0-127 range.
	ErrNonASCII = errors.New("string argument should contain only ASCII characters")

	// ErrOddLength is returned by Unhexlify when the input has odd length.
	ErrOddLength = errors.New("Odd-length string")

	// ErrNonHexDigit is returned by Unhexlify when the input contains a
	// byte that is not a hexadecimal digit.
	ErrNonHexDigit = errors.New("Non-hexadecimal digit found")
)

// UnsupportedTypeError reports an input value whose dynamic type is not one
// of the kinds the operation accepts.
type UnsupportedTypeError struct {
	// Value is the rejected input.
	Value any
	// ByteLike is true when the operation accepts only byte-like input
	// ([]byte or *bytes.Buffer), not text.
	ByteLike bool
}

func (e *UnsupportedTypeError) Error() string {
	if e.ByteLike {
		return fmt.Sprintf("argument should be a bytes-like object, not '%T'", e.Value)
	}
	return fmt.Sprintf("argument should be bytes, buffer or ASCII string, not '%T'", e.Value)
}

// Base64DecodeError reports malformed base64 input, wrapping the underlying
// decoder's diagnostic.
type Base64DecodeError struct {
	Cause error
}

func (e *Base64DecodeError) Error() string {
	return fmt.Sprintf("error decoding base64: %v", e.Cause)
}

func (e *Base64DecodeError) Unwrap() error { return e.Cause }
