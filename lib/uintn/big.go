package uintn

import (
	"math"
	"math/big"
)

// Big is an arbitrary-precision backend over math/big. It keeps value
// semantics by never mutating a shared *big.Int: every operation
// allocates its result. The zero Big is the number 0.
type Big struct {
	v *big.Int
}

// NewBig builds a Big holding a small value.
func NewBig(v uint64) Big {
	return Big{v: new(big.Int).SetUint64(v)}
}

// NewBigFromBytes builds a Big from big-endian bytes.
func NewBigFromBytes(b []byte) Big {
	return Big{v: new(big.Int).SetBytes(b)}
}

// NewBigFromHex builds a Big from a hex string, primarily for tests and
// key files. Returns false on malformed input.
func NewBigFromHex(s string) (Big, bool) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return Big{}, false
	}
	return Big{v: v}, true
}

func (x Big) ref() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// Int returns a copy of the value as a *big.Int.
func (x Big) Int() *big.Int {
	return new(big.Int).Set(x.ref())
}

func (x Big) Bits() int {
	return x.ref().BitLen()
}

func (x Big) Width() int {
	return math.MaxInt
}

func (x Big) IsZero() bool {
	return x.ref().Sign() == 0
}

func (x Big) IsEven() bool {
	return x.ref().Bit(0) == 0
}

func (x Big) Cmp(y Big) int {
	return x.ref().Cmp(y.ref())
}

func (x Big) WrappingAdd(y Big) Big {
	return Big{v: new(big.Int).Add(x.ref(), y.ref())}
}

func (x Big) WrappingSub(y Big) Big {
	z := new(big.Int).Sub(x.ref(), y.ref())
	if z.Sign() < 0 {
		// No native width to wrap at. Going below zero is a caller bug,
		// clamp loudly rather than produce a negative "unsigned" value.
		panic("uintn: Big wrapping subtraction went negative")
	}
	return Big{v: z}
}

func (x Big) Mul(y Big) Big {
	return Big{v: new(big.Int).Mul(x.ref(), y.ref())}
}

func (x Big) Div(y Big) Big {
	return Big{v: new(big.Int).Quo(x.ref(), y.ref())}
}

func (x Big) Mod(y Big) Big {
	return Big{v: new(big.Int).Rem(x.ref(), y.ref())}
}

func (x Big) Lsh(s uint) Big {
	return Big{v: new(big.Int).Lsh(x.ref(), s)}
}

func (x Big) Rsh(s uint) Big {
	return Big{v: new(big.Int).Rsh(x.ref(), s)}
}

func (x Big) SetUint64(v uint64) Big {
	return NewBig(v)
}

func (x Big) Uint64() (uint64, bool) {
	if !x.ref().IsUint64() {
		return 0, false
	}
	return x.ref().Uint64(), true
}

func (x Big) SetBytes(b []byte) (Big, bool) {
	return NewBigFromBytes(b), true
}

func (x Big) FillBytes(buf []byte) bool {
	if (x.Bits()+7)/8 > len(buf) {
		return false
	}
	x.ref().FillBytes(buf)
	return true
}

func (x Big) Wipe() Big {
	if x.v != nil {
		words := x.v.Bits()
		for i := range words {
			words[i] = 0
		}
		x.v.SetUint64(0)
	}
	return Big{}
}

var _ UintN[Big] = Big{}
