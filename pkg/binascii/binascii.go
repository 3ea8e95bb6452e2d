package binascii

// Hexlify returns the lowercase hexadecimal representation of data. The
// output is always exactly twice as long as the input.
//
// data must be byte-like: a []byte or a *bytes.Buffer.
func Hexlify(data any) ([]byte, error) {
	src, err := NewByteLike(data)
	if err != nil {
		return nil, err
	}
	return hexEncode(src.View()), nil
}

// B2AHex is the historical alias for Hexlify.
func B2AHex(data any) ([]byte, error) {
	return Hexlify(data)
}

// Unhexlify decodes hexadecimal text back into bytes, accepting both upper
// and lower case digits. It fails with ErrOddLength if the input length is
// odd and ErrNonHexDigit if any byte is not a hex digit.
//
// data may be a []byte, a *bytes.Buffer, or an ASCII string.
func Unhexlify(data any) ([]byte, error) {
	src, err := NewByteSource(data)
	if err != nil {
		return nil, err
	}
	return hexDecode(src.View())
}

// A2BHex is the historical alias for Unhexlify.
func A2BHex(data any) ([]byte, error) {
	return Unhexlify(data)
}

// CRC32 computes the IEEE CRC-32 of data seeded with seed. Pass 0 to start
// a fresh checksum, or a previous result to continue it across chunks:
// seeding the second call with the first call's result yields the same
// value as checksumming the concatenated input in one call.
//
// data may be a []byte, a *bytes.Buffer, or an ASCII string.
func CRC32(data any, seed uint32) (uint32, error) {
	src, err := NewByteSource(data)
	if err != nil {
		return 0, err
	}
	return checksum(seed, src.View()), nil
}

// A2BBase64 decodes standard base64 text back into bytes, failing with
// *Base64DecodeError when the input is not well-formed base64.
//
// data may be a []byte, a *bytes.Buffer, or an ASCII string.
func A2BBase64(data any) ([]byte, error) {
	src, err := NewByteSource(data)
	if err != nil {
		return nil, err
	}
	return base64Decode(src.View())
}

// B2ABase64 returns the standard base64 encoding of data: padded, no line
// wrapping, no trailing newline.
//
// data must be byte-like: a []byte or a *bytes.Buffer.
func B2ABase64(data any) ([]byte, error) {
	src, err := NewByteLike(data)
	if err != nil {
		return nil, err
	}
	return base64Encode(src.View()), nil
}
