package rsa

import (
	"github.com/go-i2p/gorsa/lib/uintn"
)

// IntFromBytes interprets em as a big-endian unsigned integer. It
// fails with ErrInvalidPadLen when the value does not fit the backend
// width, which for padded input can only mean the buffer was built for
// a larger key.
func IntFromBytes[T uintn.UintN[T]](em []byte) (T, error) {
	var zero T
	v, ok := zero.SetBytes(em)
	if !ok {
		return zero, ErrInvalidPadLen
	}
	return v, nil
}

// IntToBytes writes v big-endian into a buffer of exactly size bytes,
// left-padded with zeros. It fails with ErrOutputBufferTooSmall when v
// needs more than size bytes.
func IntToBytes[T uintn.UintN[T]](v T, size int) ([]byte, error) {
	out := make([]byte, size)
	if !v.FillBytes(out) {
		return nil, ErrOutputBufferTooSmall
	}
	return out, nil
}
