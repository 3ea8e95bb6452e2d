package binascii

import "encoding/base64"

// base64Encode returns the standard base64 encoding of src, padded, with
// no line wrapping and no trailing newline.
func base64Encode(src []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(src)))
	base64.StdEncoding.Encode(out, src)
	return out
}

// base64Decode parses src as standard base64, wrapping any decoder
// diagnostic in *Base64DecodeError.
func base64Decode(src []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(src)))
	n, err := base64.StdEncoding.Decode(out, src)
	if err != nil {
		return nil, &Base64DecodeError{Cause: err}
	}
	return out[:n], nil
}
