// Package ct provides the constant-time comparison helpers used by
// every unpad and verify path. The required pattern everywhere: start
// an accumulator at 1, AND in the result of every byte check without
// ever short-circuiting, and branch exactly once on the final value.
// All helpers follow the crypto/subtle convention of returning 1 for
// true and 0 for false.
package ct

import "crypto/subtle"

// ByteEq returns 1 if x == y, 0 otherwise, in constant time.
func ByteEq(x, y byte) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// Equal returns 1 if x and y have the same contents, 0 otherwise. The
// lengths are treated as public; if they differ the result is 0.
func Equal(x, y []byte) int {
	return subtle.ConstantTimeCompare(x, y)
}

// AllZeros returns 1 if every byte of x is zero, 0 otherwise, touching
// every byte regardless of where a nonzero byte appears.
func AllZeros(x []byte) int {
	var acc byte
	for _, b := range x {
		acc |= b
	}
	return ByteEq(acc, 0)
}

// Select returns a if v == 1 and b if v == 0.
func Select(v, a, b int) int {
	return subtle.ConstantTimeSelect(v, a, b)
}

// LessOrEq returns 1 if a <= b, 0 otherwise. Both arguments must be
// non-negative and at most 2**31 - 1.
func LessOrEq(a, b int) int {
	return subtle.ConstantTimeLessOrEq(a, b)
}
