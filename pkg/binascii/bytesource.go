package binascii

import "bytes"

// Kind identifies which input variant a ByteSource was built from.
type Kind int

const (
	// KindBytes is an immutable byte slice.
	KindBytes Kind = iota
	// KindBuffer is a mutable *bytes.Buffer, read without copying.
	KindBuffer
	// KindText is an ASCII-only string.
	KindText
)

// ByteSource is a read-only view over one of the three accepted input
// kinds. Classification and ASCII validation happen once, at construction;
// codecs only ever see the byte view.
//
// A ByteSource is transient: it is built from a caller value at the start
// of an operation, read once, and discarded.
type ByteSource struct {
	kind Kind
	data []byte
}

// NewByteSource classifies v into one of the three accepted kinds.
//
// A []byte becomes KindBytes and a *bytes.Buffer becomes KindBuffer, both
// without copying. A string becomes KindText if every character is in the
// ASCII range; otherwise ErrNonASCII is returned. Any other type fails
// with *UnsupportedTypeError.
func NewByteSource(v any) (ByteSource, error) {
	switch d := v.(type) {
	case []byte:
		return ByteSource{kind: KindBytes, data: d}, nil
	case *bytes.Buffer:
		return ByteSource{kind: KindBuffer, data: d.Bytes()}, nil
	case string:
		if !isASCII(d) {
			return ByteSource{}, ErrNonASCII
		}
		// ASCII text is one byte per character, so the string's bytes
		// are exactly its encoded form. Converting pays the one copy
		// here so View stays O(1).
		return ByteSource{kind: KindText, data: []byte(d)}, nil
	default:
		return ByteSource{}, &UnsupportedTypeError{Value: v}
	}
}

// NewByteLike classifies v like NewByteSource but accepts only the binary
// kinds ([]byte or *bytes.Buffer). Operations whose input is raw binary
// data use this; text makes no sense there.
func NewByteLike(v any) (ByteSource, error) {
	switch d := v.(type) {
	case []byte:
		return ByteSource{kind: KindBytes, data: d}, nil
	case *bytes.Buffer:
		return ByteSource{kind: KindBuffer, data: d.Bytes()}, nil
	default:
		return ByteSource{}, &UnsupportedTypeError{Value: v, ByteLike: true}
	}
}

// Kind reports which variant the source was built from.
func (s ByteSource) Kind() Kind { return s.kind }

// Len returns the view's length in bytes.
func (s ByteSource) Len() int { return len(s.data) }

// View returns a read-only slice of the underlying bytes. Callers must not
// modify the returned slice.
func (s ByteSource) View() []byte { return s.data }

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
