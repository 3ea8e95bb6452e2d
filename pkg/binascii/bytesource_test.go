package binascii

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewByteSource_Classification(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		kind     Kind
		expected []byte
	}{
		{
			name:     "byte slice",
			input:    []byte{1, 2, 3},
			kind:     KindBytes,
			expected: []byte{1, 2, 3},
		},
		{
			name:     "buffer",
			input:    bytes.NewBuffer([]byte{4, 5}),
			kind:     KindBuffer,
			expected: []byte{4, 5},
		},
		{
			name:     "ascii string",
			input:    "abc",
			kind:     KindText,
			expected: []byte("abc"),
		},
		{
			name:     "empty string",
			input:    "",
			kind:     KindText,
			expected: []byte{},
		},
		{
			name:     "string with high ascii boundary",
			input:    "\x7f",
			kind:     KindText,
			expected: []byte{0x7f},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := NewByteSource(tc.input)
			if err != nil {
				t.Fatalf("NewByteSource failed: %v", err)
			}
			if src.Kind() != tc.kind {
				t.Errorf("Kind mismatch: got %v, want %v", src.Kind(), tc.kind)
			}
			if !bytes.Equal(src.View(), tc.expected) {
				t.Errorf("View mismatch: got %v, want %v", src.View(), tc.expected)
			}
			if src.Len() != len(tc.expected) {
				t.Errorf("Len mismatch: got %d, want %d", src.Len(), len(tc.expected))
			}
		})
	}
}

func TestNewByteSource_NonASCII(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "accented character",
			input: "café",
		},
		{
			name:  "first non-ascii code point",
			input: "\u0080",
		},
		{
			name:  "non-ascii after valid prefix",
			input: "deadbeefÿ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewByteSource(tc.input)
			if !errors.Is(err, ErrNonASCII) {
				t.Fatalf("Expected ErrNonASCII, got %v", err)
			}
		})
	}

	if ErrNonASCII.Error() != "string argument should contain only ASCII characters" {
		t.Errorf("Unexpected message: %q", ErrNonASCII.Error())
	}
}

func TestNewByteSource_UnsupportedTypes(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "int",
			input:    7,
			expected: "argument should be bytes, buffer or ASCII string, not 'int'",
		},
		{
			name:     "float",
			input:    1.5,
			expected: "argument should be bytes, buffer or ASCII string, not 'float64'",
		},
		{
			name:     "nil",
			input:    nil,
			expected: "argument should be bytes, buffer or ASCII string, not '<nil>'",
		},
		{
			name:     "rune slice",
			input:    []rune("abc"),
			expected: "argument should be bytes, buffer or ASCII string, not '[]int32'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewByteSource(tc.input)
			var typeErr *UnsupportedTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("Expected *UnsupportedTypeError, got %v", err)
			}
			if typeErr.Error() != tc.expected {
				t.Errorf("Message mismatch: got %q, want %q", typeErr.Error(), tc.expected)
			}
		})
	}
}

func TestNewByteLike_RejectsString(t *testing.T) {
	_, err := NewByteLike("abc")
	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("Expected *UnsupportedTypeError, got %v", err)
	}
	if !typeErr.ByteLike {
		t.Error("Expected ByteLike to be set")
	}
}

func TestByteSource_NoCopyForBytes(t *testing.T) {
	in := []byte{1, 2, 3}
	src, err := NewByteSource(in)
	if err != nil {
		t.Fatalf("NewByteSource failed: %v", err)
	}
	// The view aliases the caller's slice for the binary kinds.
	in[0] = 9
	if src.View()[0] != 9 {
		t.Error("Expected View to alias the input slice")
	}
}

func TestByteSource_BufferReadWithoutDraining(t *testing.T) {
	buf := bytes.NewBufferString("abcd")
	src, err := NewByteSource(buf)
	if err != nil {
		t.Fatalf("NewByteSource failed: %v", err)
	}
	if !bytes.Equal(src.View(), []byte("abcd")) {
		t.Errorf("View mismatch: got %q", src.View())
	}
	// Reading the view must not consume the buffer.
	if buf.Len() != 4 {
		t.Errorf("Buffer was drained: %d bytes left", buf.Len())
	}
}
