package binascii

import (
	"bytes"
	"errors"
	"testing"
)

func TestHexlify(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "empty input",
			input:    []byte{},
			expected: []byte{},
		},
		{
			name:     "single byte",
			input:    []byte{0x0f},
			expected: []byte("0f"),
		},
		{
			name:     "zero and max",
			input:    []byte{0x00, 0xff},
			expected: []byte("00ff"),
		},
		{
			name:     "text input",
			input:    []byte("hello"),
			expected: []byte("68656c6c6f"),
		},
		{
			name:     "all nibble values",
			input:    []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
			expected: []byte("0123456789abcdef"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Hexlify(tc.input)
			if err != nil {
				t.Fatalf("Hexlify failed: %v", err)
			}
			if !bytes.Equal(out, tc.expected) {
				t.Errorf("Hexlify mismatch: got %q, want %q", out, tc.expected)
			}
			if len(out) != 2*len(tc.input) {
				t.Errorf("Output length mismatch: got %d, want %d", len(out), 2*len(tc.input))
			}
		})
	}
}

func TestHexlify_LowercaseOnly(t *testing.T) {
	out, err := Hexlify([]byte{0xab, 0xcd, 0xef})
	if err != nil {
		t.Fatalf("Hexlify failed: %v", err)
	}
	if !bytes.Equal(out, []byte("abcdef")) {
		t.Errorf("Expected lowercase hex, got %q", out)
	}
}

func TestHexlify_RejectsText(t *testing.T) {
	// Hexlify takes raw binary input; text is not byte-like even when ASCII.
	_, err := Hexlify("hello")
	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("Expected *UnsupportedTypeError, got %v", err)
	}
	if !typeErr.ByteLike {
		t.Error("Expected byte-like rejection")
	}
	if typeErr.Error() != "argument should be a bytes-like object, not 'string'" {
		t.Errorf("Unexpected message: %q", typeErr.Error())
	}
}

func TestUnhexlify(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected []byte
	}{
		{
			name:     "empty input",
			input:    []byte{},
			expected: []byte{},
		},
		{
			name:     "zero and max",
			input:    []byte("00ff"),
			expected: []byte{0x00, 0xff},
		},
		{
			name:     "uppercase accepted",
			input:    []byte("00FF"),
			expected: []byte{0x00, 0xff},
		},
		{
			name:     "mixed case accepted",
			input:    []byte("DeadBeef"),
			expected: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			name:     "string input",
			input:    "68656c6c6f",
			expected: []byte("hello"),
		},
		{
			name:     "buffer input",
			input:    bytes.NewBufferString("0123"),
			expected: []byte{0x01, 0x23},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Unhexlify(tc.input)
			if err != nil {
				t.Fatalf("Unhexlify failed: %v", err)
			}
			if !bytes.Equal(out, tc.expected) {
				t.Errorf("Unhexlify mismatch: got %v, want %v", out, tc.expected)
			}
		})
	}
}

func TestUnhexlify_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected error
	}{
		{
			name:     "odd length",
			input:    []byte("0"),
			expected: ErrOddLength,
		},
		{
			name:     "odd length long",
			input:    []byte("00ff0"),
			expected: ErrOddLength,
		},
		{
			name:     "non-hex digit",
			input:    []byte("zz"),
			expected: ErrNonHexDigit,
		},
		{
			name:     "non-hex digit in second position",
			input:    []byte("0g"),
			expected: ErrNonHexDigit,
		},
		{
			name:     "non-hex digit after valid pairs",
			input:    []byte("00ff!!"),
			expected: ErrNonHexDigit,
		},
		{
			name:     "whitespace is not hex",
			input:    []byte("00 ff "),
			expected: ErrNonHexDigit,
		},
		{
			name:     "non-ascii string",
			input:    "café",
			expected: ErrNonASCII,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Unhexlify(tc.input)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("Expected %v, got %v", tc.expected, err)
			}
			if out != nil {
				t.Errorf("Expected no partial output, got %v", out)
			}
		})
	}
}

func TestUnhexlify_ErrorMessages(t *testing.T) {
	if ErrOddLength.Error() != "Odd-length string" {
		t.Errorf("Unexpected odd-length message: %q", ErrOddLength.Error())
	}
	if ErrNonHexDigit.Error() != "Non-hexadecimal digit found" {
		t.Errorf("Unexpected non-hex message: %q", ErrNonHexDigit.Error())
	}
}

func TestHex_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff},
		[]byte("the quick brown fox"),
		bytes.Repeat([]byte{0x00, 0x7f, 0x80, 0xff}, 256),
	}

	for _, in := range inputs {
		encoded, err := Hexlify(in)
		if err != nil {
			t.Fatalf("Hexlify failed: %v", err)
		}
		decoded, err := Unhexlify(encoded)
		if err != nil {
			t.Fatalf("Unhexlify failed: %v", err)
		}
		if !bytes.Equal(decoded, in) {
			t.Errorf("Round trip mismatch: got %v, want %v", decoded, in)
		}
	}
}

func TestHexNibble_PanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nibble > 15")
		}
	}()
	hexNibble(16)
}
