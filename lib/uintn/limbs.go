package uintn

import "math/bits"

// Limb helpers shared by the fixed-width backends. Limbs are uint64,
// least significant first, and every operand slice has the same length
// as its result slice. Division is shift-and-subtract, chosen because
// it only needs single-width primitives; it is not constant-time, which
// matches the engine built on top of it (see lib/modmath).

func limbIsZero(x []uint64) bool {
	for _, l := range x {
		if l != 0 {
			return false
		}
	}
	return true
}

func limbBits(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

func limbCmp(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func limbAdd(z, x, y []uint64) uint64 {
	var c uint64
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

func limbSub(z, x, y []uint64) uint64 {
	var b uint64
	for i := range z {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// limbMul computes the low len(z) limbs of x*y.
func limbMul(z, x, y []uint64) {
	tmp := make([]uint64, len(z))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var c uint64
		for j := 0; i+j < len(tmp); j++ {
			hi, lo := bits.Mul64(xi, y[j])
			var cc uint64
			lo, cc = bits.Add64(lo, c, 0)
			hi += cc
			lo, cc = bits.Add64(lo, tmp[i+j], 0)
			hi += cc
			tmp[i+j] = lo
			c = hi
		}
	}
	copy(z, tmp)
}

func limbShl(z, x []uint64, s uint) {
	n := len(z)
	word := int(s / 64)
	bit := s % 64
	for i := n - 1; i >= 0; i-- {
		var v uint64
		if i-word >= 0 {
			v = x[i-word] << bit
			if bit > 0 && i-word-1 >= 0 {
				v |= x[i-word-1] >> (64 - bit)
			}
		}
		z[i] = v
	}
}

func limbShr(z, x []uint64, s uint) {
	n := len(z)
	word := int(s / 64)
	bit := s % 64
	for i := 0; i < n; i++ {
		var v uint64
		if i+word < n {
			v = x[i+word] >> bit
			if bit > 0 && i+word+1 < n {
				v |= x[i+word+1] << (64 - bit)
			}
		}
		z[i] = v
	}
}

// limbDivMod computes q = x/y and r = x%y. y must be non-zero. q and r
// must not alias x or y.
func limbDivMod(q, r, x, y []uint64) {
	for i := range q {
		q[i] = 0
	}
	for i := range r {
		r[i] = 0
	}
	if limbCmp(x, y) < 0 {
		copy(r, x)
		return
	}
	for i := limbBits(x) - 1; i >= 0; i-- {
		limbShl(r, r, 1)
		r[0] |= (x[i/64] >> (uint(i) % 64)) & 1
		if limbCmp(r, y) >= 0 {
			limbSub(r, r, y)
			q[i/64] |= 1 << (uint(i) % 64)
		}
	}
}

func limbSetBytes(z []uint64, b []byte) bool {
	for i := range z {
		z[i] = 0
	}
	if len(b) > len(z)*8 {
		// Leading zeros beyond the width are still acceptable.
		extra := b[:len(b)-len(z)*8]
		for _, c := range extra {
			if c != 0 {
				return false
			}
		}
		b = b[len(extra):]
	}
	for i := 0; i < len(b); i++ {
		c := b[len(b)-1-i]
		z[i/8] |= uint64(c) << (uint(i) % 8 * 8)
	}
	return true
}

func limbFillBytes(x []uint64, buf []byte) bool {
	if (limbBits(x)+7)/8 > len(buf) {
		return false
	}
	for i := range buf {
		buf[i] = 0
	}
	for i := 0; i < len(x)*8 && i < len(buf); i++ {
		buf[len(buf)-1-i] = byte(x[i/8] >> (uint(i) % 8 * 8))
	}
	return true
}

func limbWipe(x []uint64) {
	for i := range x {
		x[i] = 0
	}
}
