// Package binascii converts binary data to and from text-safe
// representations and computes CRC-32 integrity checksums.
//
// The package exposes five operations, each with the historical name pair
// used by the binascii convention:
//
//	Hexlify / B2AHex       bytes -> lowercase hex text
//	Unhexlify / A2BHex     hex text -> bytes
//	CRC32                  bytes -> IEEE CRC-32, chainable via a seed
//	B2ABase64              bytes -> standard base64 text
//	A2BBase64              base64 text -> bytes
//
// # Input Kinds
//
// Every operation accepts its input as one of three interchangeable kinds,
// classified once at the call boundary by ByteSource:
//
//   - []byte: an immutable byte sequence
//   - *bytes.Buffer: a mutable byte buffer, read without copying
//   - string: ASCII-only text; any character outside 0-127 is rejected
//     with ErrNonASCII before a codec ever sees the value
//
// Operations whose input is inherently binary (Hexlify, B2ABase64) accept
// only the byte-like kinds. Operations that decode textual encodings
// (Unhexlify, A2BBase64) and CRC32 accept all three, since hex and base64
// text is itself ASCII.
//
// # Error Handling
//
// Validation failures are reported as typed errors at the boundary of the
// failing call and never produce partial output:
//
//	ErrNonASCII            string input contains a non-ASCII character
//	ErrOddLength           hex decode input has odd length
//	ErrNonHexDigit         hex decode input has a non-hex byte
//	*UnsupportedTypeError  input is not one of the accepted kinds
//	*Base64DecodeError     base64 decode input is malformed
//
// Encoding operations and CRC32 are total over well-typed input and never
// fail.
//
// # Thread Safety
//
// The package holds no state between calls. Every call reads its own input
// and allocates its own output, so concurrent use needs no synchronization.
package binascii
