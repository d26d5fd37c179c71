package uintn

// U2048 is a fixed-width 2048-bit unsigned integer backend. See U512 for
// why each width is its own type.
type U2048 struct {
	w [32]uint64
}

// NewU2048 builds a U2048 holding a small value.
func NewU2048(v uint64) U2048 {
	var z U2048
	z.w[0] = v
	return z
}

// NewU2048FromBytes builds a U2048 from big-endian bytes.
func NewU2048FromBytes(b []byte) (U2048, bool) {
	var z U2048
	ok := limbSetBytes(z.w[:], b)
	return z, ok
}

func (x U2048) Bits() int {
	return limbBits(x.w[:])
}

func (x U2048) Width() int {
	return len(x.w) * 64
}

func (x U2048) IsZero() bool {
	return limbIsZero(x.w[:])
}

func (x U2048) IsEven() bool {
	return x.w[0]&1 == 0
}

func (x U2048) Cmp(y U2048) int {
	return limbCmp(x.w[:], y.w[:])
}

func (x U2048) WrappingAdd(y U2048) U2048 {
	var z U2048
	limbAdd(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U2048) WrappingSub(y U2048) U2048 {
	var z U2048
	limbSub(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U2048) Mul(y U2048) U2048 {
	var z U2048
	limbMul(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U2048) Div(y U2048) U2048 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	var q, r U2048
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return q
}

func (x U2048) Mod(y U2048) U2048 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	if limbCmp(x.w[:], y.w[:]) < 0 {
		return x
	}
	var q, r U2048
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return r
}

func (x U2048) Lsh(s uint) U2048 {
	var z U2048
	limbShl(z.w[:], x.w[:], s)
	return z
}

func (x U2048) Rsh(s uint) U2048 {
	var z U2048
	limbShr(z.w[:], x.w[:], s)
	return z
}

func (x U2048) SetUint64(v uint64) U2048 {
	return NewU2048(v)
}

func (x U2048) Uint64() (uint64, bool) {
	return x.w[0], limbBits(x.w[:]) <= 64
}

func (x U2048) SetBytes(b []byte) (U2048, bool) {
	return NewU2048FromBytes(b)
}

func (x U2048) FillBytes(buf []byte) bool {
	return limbFillBytes(x.w[:], buf)
}

func (x U2048) Wipe() U2048 {
	limbWipe(x.w[:])
	return U2048{}
}

var _ UintN[U2048] = U2048{}
