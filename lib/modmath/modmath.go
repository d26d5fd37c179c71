// Package modmath implements modular addition, subtraction,
// multiplication and exponentiation over any uintn backend. The
// algorithms only need single-width primitives: multiplication is
// binary double-and-add and exponentiation is square-and-multiply, so
// no double-width multiply is ever required and intermediate values
// cannot overflow the backend.
//
// Exponentiation is not constant-time with respect to the exponent.
// That is fine for public exponents; private-exponent paths go through
// lib/rsa, which layers CRT and blinding on top.
package modmath

import (
	"github.com/go-i2p/gorsa/lib/uintn"
	"github.com/go-i2p/gorsa/lib/util"
)

// checkModulus rejects a zero modulus before it can reach a backend's
// division. A zero modulus is a programmer error, not an input
// condition, so this panics rather than returning an error.
func checkModulus[T uintn.UintN[T]](m T) {
	if m.IsZero() {
		util.Panicf("modmath: modulus is zero")
	}
}

// Add returns (a + b) mod m. Both operands are reduced first; the
// wrapping sum is corrected when it exceeds m or wrapped the backend's
// width (the sum comparing below a reduced operand is the wrap signal).
func Add[T uintn.UintN[T]](a, b, m T) T {
	checkModulus(m)
	am := a.Mod(m)
	bm := b.Mod(m)
	sum := am.WrappingAdd(bm)
	if sum.Cmp(m) >= 0 || sum.Cmp(am) < 0 {
		return sum.WrappingSub(m)
	}
	return sum
}

// Sub returns (a - b) mod m.
func Sub[T uintn.UintN[T]](a, b, m T) T {
	checkModulus(m)
	am := a.Mod(m)
	bm := b.Mod(m)
	if am.Cmp(bm) >= 0 {
		return am.WrappingSub(bm)
	}
	return am.WrappingAdd(m).WrappingSub(bm)
}

// Mul returns (a * b) mod m using binary double-and-add: one Add per
// set bit of b plus one doubling per bit. O(width) Adds, no wide
// multiply needed.
func Mul[T uintn.UintN[T]](a, b, m T) T {
	checkModulus(m)
	a = a.Mod(m)
	b = b.Mod(m)
	result := m.SetUint64(0)
	for !b.IsZero() {
		if !b.IsEven() {
			result = Add(result, a, m)
		}
		a = Add(a, a, m)
		b = b.Rsh(1)
	}
	return result
}

// Exp returns base**exponent mod m by square-and-multiply, least
// significant exponent bit first. Exp(x, 0, m) is 1 mod m for every x,
// and any result mod 1 is 0.
func Exp[T uintn.UintN[T]](base, exponent, m T) T {
	checkModulus(m)
	result := m.SetUint64(1).Mod(m)
	base = base.Mod(m)
	for !exponent.IsZero() {
		if !exponent.IsEven() {
			result = Mul(result, base, m)
		}
		exponent = exponent.Rsh(1)
		if !exponent.IsZero() {
			base = Mul(base, base, m)
		}
	}
	return result
}
