package uintn

// U4096 is a fixed-width 4096-bit unsigned integer backend. See U512 for
// why each width is its own type.
type U4096 struct {
	w [64]uint64
}

// NewU4096 builds a U4096 holding a small value.
func NewU4096(v uint64) U4096 {
	var z U4096
	z.w[0] = v
	return z
}

// NewU4096FromBytes builds a U4096 from big-endian bytes.
func NewU4096FromBytes(b []byte) (U4096, bool) {
	var z U4096
	ok := limbSetBytes(z.w[:], b)
	return z, ok
}

func (x U4096) Bits() int {
	return limbBits(x.w[:])
}

func (x U4096) Width() int {
	return len(x.w) * 64
}

func (x U4096) IsZero() bool {
	return limbIsZero(x.w[:])
}

func (x U4096) IsEven() bool {
	return x.w[0]&1 == 0
}

func (x U4096) Cmp(y U4096) int {
	return limbCmp(x.w[:], y.w[:])
}

func (x U4096) WrappingAdd(y U4096) U4096 {
	var z U4096
	limbAdd(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U4096) WrappingSub(y U4096) U4096 {
	var z U4096
	limbSub(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U4096) Mul(y U4096) U4096 {
	var z U4096
	limbMul(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U4096) Div(y U4096) U4096 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	var q, r U4096
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return q
}

func (x U4096) Mod(y U4096) U4096 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	if limbCmp(x.w[:], y.w[:]) < 0 {
		return x
	}
	var q, r U4096
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return r
}

func (x U4096) Lsh(s uint) U4096 {
	var z U4096
	limbShl(z.w[:], x.w[:], s)
	return z
}

func (x U4096) Rsh(s uint) U4096 {
	var z U4096
	limbShr(z.w[:], x.w[:], s)
	return z
}

func (x U4096) SetUint64(v uint64) U4096 {
	return NewU4096(v)
}

func (x U4096) Uint64() (uint64, bool) {
	return x.w[0], limbBits(x.w[:]) <= 64
}

func (x U4096) SetBytes(b []byte) (U4096, bool) {
	return NewU4096FromBytes(b)
}

func (x U4096) FillBytes(buf []byte) bool {
	return limbFillBytes(x.w[:], buf)
}

func (x U4096) Wipe() U4096 {
	limbWipe(x.w[:])
	return U4096{}
}

var _ UintN[U4096] = U4096{}
