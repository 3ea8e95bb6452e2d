package binascii

import "fmt"

// hexDigits is the alphabet used on encode. Encoding is lowercase-only;
// decoding accepts both cases.
const hexDigits = "0123456789abcdef"

func hexNibble(n byte) byte {
	if n > 0xf {
		// Unreachable for byte input masked to a nibble; a value here
		// means a logic defect, not bad input.
		panic(fmt.Sprintf("binascii: nibble out of range: %d", n))
	}
	return hexDigits[n]
}

// hexEncode returns the lowercase hex representation of src, two output
// bytes per input byte.
func hexEncode(src []byte) []byte {
	out := make([]byte, len(src)*2)
	for i, b := range src {
		out[i*2] = hexNibble(b >> 4)
		out[i*2+1] = hexNibble(b & 0xf)
	}
	return out
}

func unhexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// hexDecode parses src as hex, two input bytes per output byte. It fails
// eagerly: on the first bad pair no partial result is returned.
func hexDecode(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(src)/2)
	for i := 0; i < len(out); i++ {
		hi, hiOK := unhexNibble(src[i*2])
		lo, loOK := unhexNibble(src[i*2+1])
		if !hiOK || !loOK {
			return nil, ErrNonHexDigit
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}
