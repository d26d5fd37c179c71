package uintn

// U512 is a fixed-width 512-bit unsigned integer backend built on the
// shared limb helpers. The widths U256 through U4096 are separate types
// rather than one sized value so that key material never silently
// changes capacity when it moves between variables.
type U512 struct {
	w [8]uint64
}

// NewU512 builds a U512 holding a small value.
func NewU512(v uint64) U512 {
	var z U512
	z.w[0] = v
	return z
}

// NewU512FromBytes builds a U512 from big-endian bytes.
func NewU512FromBytes(b []byte) (U512, bool) {
	var z U512
	ok := limbSetBytes(z.w[:], b)
	return z, ok
}

func (x U512) Bits() int {
	return limbBits(x.w[:])
}

func (x U512) Width() int {
	return len(x.w) * 64
}

func (x U512) IsZero() bool {
	return limbIsZero(x.w[:])
}

func (x U512) IsEven() bool {
	return x.w[0]&1 == 0
}

func (x U512) Cmp(y U512) int {
	return limbCmp(x.w[:], y.w[:])
}

func (x U512) WrappingAdd(y U512) U512 {
	var z U512
	limbAdd(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U512) WrappingSub(y U512) U512 {
	var z U512
	limbSub(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U512) Mul(y U512) U512 {
	var z U512
	limbMul(z.w[:], x.w[:], y.w[:])
	return z
}

func (x U512) Div(y U512) U512 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	var q, r U512
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return q
}

func (x U512) Mod(y U512) U512 {
	if limbIsZero(y.w[:]) {
		panic("uintn: division by zero")
	}
	if limbCmp(x.w[:], y.w[:]) < 0 {
		return x
	}
	var q, r U512
	limbDivMod(q.w[:], r.w[:], x.w[:], y.w[:])
	return r
}

func (x U512) Lsh(s uint) U512 {
	var z U512
	limbShl(z.w[:], x.w[:], s)
	return z
}

func (x U512) Rsh(s uint) U512 {
	var z U512
	limbShr(z.w[:], x.w[:], s)
	return z
}

func (x U512) SetUint64(v uint64) U512 {
	return NewU512(v)
}

func (x U512) Uint64() (uint64, bool) {
	return x.w[0], limbBits(x.w[:]) <= 64
}

func (x U512) SetBytes(b []byte) (U512, bool) {
	return NewU512FromBytes(b)
}

func (x U512) FillBytes(buf []byte) bool {
	return limbFillBytes(x.w[:], buf)
}

func (x U512) Wipe() U512 {
	limbWipe(x.w[:])
	return U512{}
}

var _ UintN[U512] = U512{}
