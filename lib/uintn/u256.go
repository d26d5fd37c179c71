package uintn

// U256 is a fixed-width 256-bit unsigned integer backend. See U512 for
// why each width is its own type.
type U256 struct {
	w [4]uint64
}

// NewU256 builds a U256 holding a small value.
func NewU256(v uint64) U256 {
	var z U256
	z.w[0] = v
	return z
}

// NewU256FromBytes builds a U256 from big-endian bytes.
func NewU256FromBytes(b []byte) (U256, bool) {
	var z U256
	ok := limbSetBytes(z.w[:], b)
	return z, ok
}

func (x U256) Bits() int {
	return limbBits(x.w[:])
}

func (x U256) Width() int {
	return len(x.w) * 64
}

func (x U256) IsZero() bool {
	return limbIsZero(x.w[:])
}

func (x U256) IsEven() bool {
	return x.w[0]&1 == 0
}

func (x U256) Cmp(y U256) int {
	return limbCmp(x.w[:], y.w[:])
}

func (x U256) WrappingAdd(y U256) U256 {
	var z U256
	limbAdd(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U256) WrappingSub(y U256) U256 {
	var z U256
	limbSub(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U256) Mul(y U256) U256 {
	var z U256
	limbMul(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U256) Div(y U256) U256 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	var q, r U256
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return q
}

func (x U256) Mod(y U256) U256 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	if limbCmp(x.w[:], y.w[:]) < 0 {
		return x
	}
	var q, r U256
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return r
}

func (x U256) Lsh(s uint) U256 {
	var z U256
	limbShl(z.w[:], x.w[:], s)
	return z
}

func (x U256) Rsh(s uint) U256 {
	var z U256
	limbShr(z.w[:], x.w[:], s)
	return z
}

func (x U256) SetUint64(v uint64) U256 {
	return NewU256(v)
}

func (x U256) Uint64() (uint64, bool) {
	return x.w[0], limbBits(x.w[:]) <= 64
}

func (x U256) SetBytes(b []byte) (U256, bool) {
	return NewU256FromBytes(b)
}

func (x U256) FillBytes(buf []byte) bool {
	return limbFillBytes(x.w[:], buf)
}

func (x U256) Wipe() U256 {
	limbWipe(x.w[:])
	return U256{}
}

var _ UintN[U256] = U256{}
