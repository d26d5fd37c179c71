package rsa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-i2p/gorsa/lib/uintn"
)

const k512DEuler = "a75081f828637df3b3ce59967df6aed015c8b56e496b0218af60305ffb057d7f9b15486586bcf686d1382057755f5d3a66bc23ed0a980bf3a5424b0a86c42ba5"

// 255-bit key over the fixed-width U256 backend.
const (
	k256P = "ae658f33fe3b890b93f448b3a5aa3c81"
	k256Q = "a9c8510115d3542d08b664e518593dfb"
	k256N = "73a9821013073a6cd6cc23fb91112355144bfbe9afd6bc5b207327dd1f2d0f7b"
	k256D = "056478476693b6321fdb99abdf6a14a31148b812f6165dfd5e7688d8ca4ce581"
)

func TestRawRoundTrip(t *testing.T) {
	key := testKey512(t)
	pub := key.Public()
	m := mustBig(t, "123456789abcdef0123456789abcdef0")

	c := Encrypt(&pub, m)
	assert.NotEqual(t, 0, c.Cmp(m))

	// CRT path, no blinding.
	got, err := Decrypt[uintn.Big](nil, key, c)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m))

	// Plain d exponentiation.
	key.ClearPrecomputed()
	got, err = Decrypt[uintn.Big](nil, key, c)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m))

	// Blinded, CRT.
	require.NoError(t, key.Precompute())
	got, err = Decrypt(rand.New(rand.NewSource(1)), key, c)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m))
}

func TestDecryptRejectsOversizedCiphertext(t *testing.T) {
	key := testKey512(t)
	_, err := Decrypt[uintn.Big](nil, key, key.N())
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecryptAndCheck(t *testing.T) {
	key := testKey512(t)
	pub := key.Public()
	m := uintn.NewBig(424242)

	got, err := DecryptAndCheck(rand.New(rand.NewSource(2)), key, Encrypt(&pub, m))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m))
}

func TestMultiprimeRawRoundTrip(t *testing.T) {
	primes := []uintn.Big{mustBig(t, mpP0), mustBig(t, mpP1), mustBig(t, mpP2)}
	key, err := FromPrimes(primes, uintn.NewBig(65537))
	require.NoError(t, err)
	pub := key.Public()

	m := uintn.NewBig(987654321)
	c := Encrypt(&pub, m)

	got, err := Decrypt[uintn.Big](nil, key, c)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m))

	// The three-prime CRT fold must agree with plain exponentiation.
	key.ClearPrecomputed()
	got, err = Decrypt[uintn.Big](nil, key, c)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m))
}

func TestFixedWidthRoundTrip(t *testing.T) {
	p, ok := uintn.NewU256FromBytes(mustBytes(t, k256P))
	require.True(t, ok)
	q, ok := uintn.NewU256FromBytes(mustBytes(t, k256Q))
	require.True(t, ok)

	key, err := FromPQ(p, q, uintn.NewU256(65537))
	require.NoError(t, err)
	assert.Equal(t, 32, key.Size())

	wantN, ok := uintn.NewU256FromBytes(mustBytes(t, k256N))
	require.True(t, ok)
	assert.Equal(t, 0, key.N().Cmp(wantN))
	wantD, ok := uintn.NewU256FromBytes(mustBytes(t, k256D))
	require.True(t, ok)
	assert.Equal(t, 0, key.D().Cmp(wantD))

	pub := key.Public()
	m := uintn.NewU256(0xfeedface)
	got, err := Decrypt[uintn.U256](nil, key, Encrypt(&pub, m))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m))
}

func TestPrivateExponentDerivations(t *testing.T) {
	primes := []uintn.Big{mustBig(t, k512P), mustBig(t, k512Q)}
	e := uintn.NewBig(65537)

	d, err := PrivateExponentCarmichael(primes, e)
	require.NoError(t, err)
	bigEq(t, k512D, d, "carmichael d")

	dEuler, err := PrivateExponentEulerTotient(primes, e)
	require.NoError(t, err)
	bigEq(t, k512DEuler, dEuler, "euler d")

	// Both are valid exponents even when they differ.
	_, err = FromComponents(mustBig(t, k512N), e, dEuler, primes)
	require.NoError(t, err)

	_, err = PrivateExponentCarmichael(primes[:1], e)
	assert.ErrorIs(t, err, ErrInvalidPrime)

	// e = 3 divides p-1 here, so no inverse exists.
	_, err = PrivateExponentCarmichael(
		[]uintn.Big{uintn.NewBig(7), uintn.NewBig(13)}, uintn.NewBig(3))
	assert.ErrorIs(t, err, ErrInvalidExponent)
}

func TestModInverse(t *testing.T) {
	inv, ok := modInverse(uintn.NewBig(3), uintn.NewBig(7))
	require.True(t, ok)
	assert.Equal(t, 0, inv.Cmp(uintn.NewBig(5)))

	inv, ok = modInverse(uintn.NewBig(65537), mustBig(t, k512P).WrappingSub(uintn.NewBig(1)))
	require.True(t, ok)
	// a * a^-1 ≡ 1.
	m := mustBig(t, k512P).WrappingSub(uintn.NewBig(1))
	prod := inv.Mul(uintn.NewBig(65537)).Mod(m)
	assert.Equal(t, 0, prod.Cmp(uintn.NewBig(1)))

	_, ok = modInverse(uintn.NewBig(4), uintn.NewBig(8))
	assert.False(t, ok)
	_, ok = modInverse(uintn.NewBig(5), uintn.NewBig(1))
	assert.False(t, ok)
}

func TestGcdLcm(t *testing.T) {
	g := gcd(uintn.NewBig(48), uintn.NewBig(36))
	assert.Equal(t, 0, g.Cmp(uintn.NewBig(12)))

	l := lcm(uintn.NewBig(48), uintn.NewBig(36))
	assert.Equal(t, 0, l.Cmp(uintn.NewBig(144)))

	g = gcd(uintn.NewBig(17), uintn.NewBig(0))
	assert.Equal(t, 0, g.Cmp(uintn.NewBig(17)))
}

func TestRecoverPrimes(t *testing.T) {
	n := mustBig(t, k512N)
	e := uintn.NewBig(65537)
	d := mustBig(t, k512D)

	p, q, err := RecoverPrimes(n, e, d)
	require.NoError(t, err)
	bigEq(t, k512Q, p, "larger factor")
	bigEq(t, k512P, q, "smaller factor")

	// e must be strictly between 2^16 and 2^256.
	_, _, err = RecoverPrimes(n, uintn.NewBig(3), d)
	assert.ErrorIs(t, err, ErrInvalidExponent)
}

// 256-bit key where d·e-1 = 2·r with r odd, so factoring has to look
// at the very last squaring level. Roughly half of all two-prime keys
// look like this.
const (
	oddHalfP = "f36b1be2263961d1b51cecef3e5bcce7"
	oddHalfQ = "abea714de929840090b13f3013eadac3"
	oddHalfN = "a3777743e87970bb6111997a4e3b806c4307f484d301f2eccf7649c51c8fc9f5"
	oddHalfD = "2320c3a0f4bed0227c481f6ec08c19db10c5805e1f51b92ba84457e6ae534c0b"
)

func TestRecoverPrimesOddHalfExponent(t *testing.T) {
	n := mustBig(t, oddHalfN)
	e := uintn.NewBig(65537)
	d := mustBig(t, oddHalfD)

	p, q, err := RecoverPrimes(n, e, d)
	require.NoError(t, err)
	bigEq(t, oddHalfP, p, "larger factor")
	bigEq(t, oddHalfQ, q, "smaller factor")

	// The same key through the component constructor.
	key, err := FromComponents(n, e, d, nil)
	require.NoError(t, err)
	require.Len(t, key.Primes(), 2)
	require.NoError(t, key.Validate())
}

func TestComputeModulus(t *testing.T) {
	n := computeModulus([]uintn.Big{uintn.NewBig(6), uintn.NewBig(7), uintn.NewBig(11)})
	assert.Equal(t, 0, n.Cmp(uintn.NewBig(462)))
}
