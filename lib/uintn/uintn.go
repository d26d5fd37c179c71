// Package uintn defines the numeric capability contract that every RSA
// operation in this module is written against, together with three
// families of backends: native machine words, fixed-width multi-limb
// integers, and an arbitrary-precision math/big wrapper.
package uintn

// UintN is the capability contract for an unsigned integer backend.
//
// Implementations are immutable value types: every operation returns a
// new value and never mutates the receiver. Arithmetic wraps at the
// backend's native width. A zero value of any backend is the number 0
// and is ready to use.
type UintN[T any] interface {
	// Bits returns the number of significant bits, 0 for the value 0.
	Bits() int
	// Width returns the backend's capacity in bits. Arbitrary-precision
	// backends return a very large sentinel.
	Width() int

	IsZero() bool
	IsEven() bool

	// Cmp returns -1, 0 or 1 depending on whether the receiver is less
	// than, equal to, or greater than x.
	Cmp(x T) int

	WrappingAdd(x T) T
	WrappingSub(x T) T
	// Mul is a wrapping multiply, keeping the low Width() bits.
	Mul(x T) T
	// Div is truncated division. The divisor must not be zero.
	Div(x T) T
	// Mod is the remainder of Div. The divisor must not be zero.
	Mod(x T) T

	Lsh(s uint) T
	Rsh(s uint) T

	// SetUint64 builds a value of the same backend as the receiver.
	// The receiver's own value is ignored, it only selects the backend.
	SetUint64(v uint64) T
	// Uint64 returns the value and true if it fits in 64 bits.
	Uint64() (uint64, bool)

	// SetBytes builds a value of the receiver's backend from big-endian
	// bytes. Returns false if the value does not fit the width.
	SetBytes(b []byte) (T, bool)
	// FillBytes writes the value big-endian, left zero padded, into
	// buf. Returns false if the value does not fit in len(buf) bytes.
	FillBytes(buf []byte) bool

	// Wipe overwrites any backing storage with zeros and returns the
	// zero value. Callers holding secrets must assign the result back.
	Wipe() T
}
