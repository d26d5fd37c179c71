package uintn

// U1024 is a fixed-width 1024-bit unsigned integer backend. See U512 for
// why each width is its own type.
type U1024 struct {
	w [16]uint64
}

// NewU1024 builds a U1024 holding a small value.
func NewU1024(v uint64) U1024 {
	var z U1024
	z.w[0] = v
	return z
}

// NewU1024FromBytes builds a U1024 from big-endian bytes.
func NewU1024FromBytes(b []byte) (U1024, bool) {
	var z U1024
	ok := limbSetBytes(z.w[:], b)
	return z, ok
}

func (x U1024) Bits() int {
	return limbBits(x.w[:])
}

func (x U1024) Width() int {
	return len(x.w) * 64
}

func (x U1024) IsZero() bool {
	return limbIsZero(x.w[:])
}

func (x U1024) IsEven() bool {
	return x.w[0]&1 == 0
}

func (x U1024) Cmp(y U1024) int {
	return limbCmp(x.w[:], y.w[:])
}

func (x U1024) WrappingAdd(y U1024) U1024 {
	var z U1024
	limbAdd(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U1024) WrappingSub(y U1024) U1024 {
	var z U1024
	limbSub(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U1024) Mul(y U1024) U1024 {
	var z U1024
	limbMul(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U1024) Div(y U1024) U1024 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	var q, r U1024
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return q
}

func (x U1024) Mod(y U1024) U1024 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	if limbCmp(x.w[:], y.w[:]) < 0 {
		return x
	}
	var q, r U1024
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return r
}

func (x U1024) Lsh(s uint) U1024 {
	var z U1024
	limbShl(z.w[:], x.w[:], s)
	return z
}

func (x U1024) Rsh(s uint) U1024 {
	var z U1024
	limbShr(z.w[:], x.w[:], s)
	return z
}

func (x U1024) SetUint64(v uint64) U1024 {
	return NewU1024(v)
}

func (x U1024) Uint64() (uint64, bool) {
	return x.w[0], limbBits(x.w[:]) <= 64
}

func (x U1024) SetBytes(b []byte) (U1024, bool) {
	return NewU1024FromBytes(b)
}

func (x U1024) FillBytes(buf []byte) bool {
	return limbFillBytes(x.w[:], buf)
}

func (x U1024) Wipe() U1024 {
	limbWipe(x.w[:])
	return U1024{}
}

var _ UintN[U1024] = U1024{}
