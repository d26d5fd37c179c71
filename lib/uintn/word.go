package uintn

import "math/bits"

// wordint is the set of native unsigned widths supported by Word.
type wordint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Word wraps a native unsigned integer as a UintN backend. It is the
// cheapest backend and the one used to exercise the arithmetic engine
// at every machine width.
type Word[T wordint] struct {
	v T
}

type (
	U8  = Word[uint8]
	U16 = Word[uint16]
	U32 = Word[uint32]
	U64 = Word[uint64]
)

// NewWord wraps a native unsigned value.
func NewWord[T wordint](v T) Word[T] {
	return Word[T]{v: v}
}

// Value returns the wrapped native value.
func (w Word[T]) Value() T {
	return w.v
}

func (w Word[T]) Bits() int {
	return bits.Len64(uint64(w.v))
}

func (w Word[T]) Width() int {
	n := 0
	for x := ^T(0); x != 0; x >>= 1 {
		n++
	}
	return n
}

func (w Word[T]) IsZero() bool {
	return w.v == 0
}

func (w Word[T]) IsEven() bool {
	return w.v&1 == 0
}

func (w Word[T]) Cmp(x Word[T]) int {
	switch {
	case w.v < x.v:
		return -1
	case w.v > x.v:
		return 1
	}
	return 0
}

func (w Word[T]) WrappingAdd(x Word[T]) Word[T] {
	return Word[T]{v: w.v + x.v}
}

func (w Word[T]) WrappingSub(x Word[T]) Word[T] {
	return Word[T]{v: w.v - x.v}
}

func (w Word[T]) Mul(x Word[T]) Word[T] {
	return Word[T]{v: w.v * x.v}
}

func (w Word[T]) Div(x Word[T]) Word[T] {
	return Word[T]{v: w.v / x.v}
}

func (w Word[T]) Mod(x Word[T]) Word[T] {
	return Word[T]{v: w.v % x.v}
}

func (w Word[T]) Lsh(s uint) Word[T] {
	if s >= uint(w.Width()) {
		return Word[T]{}
	}
	return Word[T]{v: w.v << s}
}

func (w Word[T]) Rsh(s uint) Word[T] {
	if s >= uint(w.Width()) {
		return Word[T]{}
	}
	return Word[T]{v: w.v >> s}
}

func (w Word[T]) SetUint64(v uint64) Word[T] {
	return Word[T]{v: T(v)}
}

func (w Word[T]) Uint64() (uint64, bool) {
	return uint64(w.v), true
}

func (w Word[T]) SetBytes(b []byte) (Word[T], bool) {
	var v uint64
	width := w.Width()
	for _, c := range b {
		if v>>(64-8) != 0 {
			return Word[T]{}, false
		}
		v = v<<8 | uint64(c)
	}
	if width < 64 && v>>uint(width) != 0 {
		return Word[T]{}, false
	}
	return Word[T]{v: T(v)}, true
}

func (w Word[T]) FillBytes(buf []byte) bool {
	if (w.Bits()+7)/8 > len(buf) {
		return false
	}
	v := uint64(w.v)
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return true
}

func (w Word[T]) Wipe() Word[T] {
	w.v = 0
	return Word[T]{}
}

var _ UintN[U64] = U64{}
