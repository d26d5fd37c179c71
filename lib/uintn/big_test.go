package uintn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigZeroValue(t *testing.T) {
	var x Big
	assert.True(t, x.IsZero())
	assert.True(t, x.IsEven())
	assert.Equal(t, 0, x.Bits())
	assert.Equal(t, math.MaxInt, x.Width())
}

func TestBigFromHex(t *testing.T) {
	x, ok := NewBigFromHex("deadbeef")
	require.True(t, ok)
	v, ok := x.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(0xdeadbeef), v)

	_, ok = NewBigFromHex("not hex")
	assert.False(t, ok)
	_, ok = NewBigFromHex("-5")
	assert.False(t, ok)
}

func TestBigArithmetic(t *testing.T) {
	a := NewBig(1 << 40)
	b := NewBig(3)

	assert.Equal(t, 0, a.Mul(b).Cmp(NewBig(3<<40)))
	assert.Equal(t, 0, a.Div(b).Cmp(NewBig((1<<40)/3)))
	assert.Equal(t, 0, a.Mod(b).Cmp(NewBig((1<<40)%3)))
	assert.Equal(t, 0, a.WrappingAdd(b).Cmp(NewBig(1<<40+3)))
	assert.Equal(t, 0, a.WrappingSub(b).Cmp(NewBig(1<<40-3)))
	assert.Equal(t, 0, a.Lsh(3).Cmp(NewBig(1<<43)))
	assert.Equal(t, 0, a.Rsh(39).Cmp(NewBig(2)))
}

func TestBigSubNegativePanics(t *testing.T) {
	defer func() {
		require.NotNil(t, recover())
	}()
	NewBig(1).WrappingSub(NewBig(2))
}

func TestBigBytesRoundTrip(t *testing.T) {
	x, ok := Big{}.SetBytes([]byte{0x01, 0x02, 0x03})
	require.True(t, ok)
	buf := make([]byte, 5)
	require.True(t, x.FillBytes(buf))
	assert.Equal(t, []byte{0, 0, 0x01, 0x02, 0x03}, buf)

	assert.False(t, x.FillBytes(make([]byte, 2)))
}

func TestBigWipe(t *testing.T) {
	x, ok := NewBigFromHex("ffffffffffffffffffffffffffffffff")
	require.True(t, ok)
	x = x.Wipe()
	assert.True(t, x.IsZero())
}
