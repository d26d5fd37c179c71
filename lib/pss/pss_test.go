package pss

import (
	"crypto"
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/uintn"
)

// Deterministic 1024-bit test key (1023-bit modulus).
const (
	k1024P = "9361cc1012332297ba262bb51e080111ca172199c7f64883820e92cf6ac548fa431bbbc99f6462b77a33c96a32c2c699f366a72de786100a18ec83856c6f1afb"
	k1024Q = "855a40a2e8539375e2ce8aa6775f755308632df9169a4b6d2de85fb78ab8ab222eaef1b4b7b54d97f39cb4fe6cf5366cb7be3819645849998025aff34979db01"
)

// 1025-bit modulus: the encoded message is one byte shorter than the
// signature for this key.
const (
	k1025P = "1c9de9ba038f4306008e6afc88c89c327b656e9145afa03229db2ac41a1972da65a429ef3bf042788f6d20a7650cab16c9822ecc3c2f39afefcba7acf1d6597db"
	k1025Q = "ef5be6cd12c327355664b39db880e1cf10fd7b2446050e656770711f8d2c644317f7949b66f65277f1d7482c3c5f1b6490e2d860ded1fedb0ace38aa88eeae6b"
)

// PSS-SHA256 signature of "hello world" with salt 0xa5 * 32 under the
// 1024-bit key.
const sigSaltA5 = "0c8a882d43d884a3767a654253a560bf1055cd7445b8670b357de75e800fb2a071438d531d1643bef541145d5c910c5832af4fac1c59a4132dce3dc2b17231039f30b573046732881e5056faf40259e59bdae8a7a4059760669bead7b2d5e73911ad9baed8625f327bce84aa97896b84c7447e0dfbb2da970b34bdc16db3e31a"

// constReader yields one byte value forever.
type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

func loadKey(t *testing.T, pHex, qHex string) *rsa.PrivateKey[uintn.Big] {
	t.Helper()
	p, ok := uintn.NewBigFromHex(pHex)
	require.True(t, ok)
	q, ok := uintn.NewBigFromHex(qHex)
	require.True(t, ok)
	key, err := rsa.FromPQ(p, q, uintn.NewBig(65537))
	require.NoError(t, err)
	return key
}

func sha256Of(data []byte) []byte {
	d := sha256.Sum256(data)
	return d[:]
}

func TestSignKnownAnswer(t *testing.T) {
	key := loadKey(t, k1024P, k1024Q)
	hashed := sha256Of([]byte("hello world"))

	// The salt comes off the reader first, so a constant reader fixes
	// it at 0xa5 * 32; blinding does not change the signature value.
	sig, err := Sign(constReader(0xa5), key, crypto.SHA256, hashed, 32)
	require.NoError(t, err)
	assert.Equal(t, sigSaltA5, hex.EncodeToString(sig))

	pub := key.Public()
	require.NoError(t, Verify(&pub, crypto.SHA256, hashed, sig, 32))
	require.NoError(t, Verify(&pub, crypto.SHA256, hashed, sig, SaltLengthAuto))
	require.NoError(t, Verify(&pub, crypto.SHA256, hashed, sig, SaltLengthEqualsHash))
}

func TestVerifyRejectsTampering(t *testing.T) {
	key := loadKey(t, k1024P, k1024Q)
	pub := key.Public()
	hashed := sha256Of([]byte("hello world"))
	good, err := hex.DecodeString(sigSaltA5)
	require.NoError(t, err)

	flip := func(i int, mask byte) []byte {
		sig := append([]byte(nil), good...)
		sig[i] ^= mask
		return sig
	}

	assert.ErrorIs(t, Verify(&pub, crypto.SHA256, hashed, flip(0, 0x01), 32), rsa.ErrVerification)
	assert.ErrorIs(t, Verify(&pub, crypto.SHA256, hashed, flip(127, 0x80), 32), rsa.ErrVerification)
	assert.ErrorIs(t, Verify(&pub, crypto.SHA256, hashed, good[:100], 32), rsa.ErrVerification)

	// Wrong expected salt length.
	assert.ErrorIs(t, Verify(&pub, crypto.SHA256, hashed, good, 16), rsa.ErrVerification)

	// Wrong message.
	other := sha256Of([]byte("hello there"))
	assert.ErrorIs(t, Verify(&pub, crypto.SHA256, other, good, 32), rsa.ErrVerification)
}

func TestRoundTripOddModulusWidth(t *testing.T) {
	key := loadKey(t, k1025P, k1025Q)
	require.Equal(t, 1025, key.N().Bits())
	pub := key.Public()
	rng := rand.New(rand.NewSource(21))
	hashed := sha256Of([]byte("odd width"))

	sig, err := Sign(rng, key, crypto.SHA256, hashed, SaltLengthEqualsHash)
	require.NoError(t, err)
	// Signature is modulus sized even though the encoding is a byte
	// shorter.
	assert.Len(t, sig, 129)
	require.NoError(t, Verify(&pub, crypto.SHA256, hashed, sig, SaltLengthAuto))
}

func TestSignSaltLengths(t *testing.T) {
	key := loadKey(t, k1024P, k1024Q)
	pub := key.Public()
	rng := rand.New(rand.NewSource(22))
	hashed := sha256Of([]byte("salty"))

	// Auto uses the largest salt that fits: emLen - hLen - 2 = 94.
	sig, err := Sign(rng, key, crypto.SHA256, hashed, SaltLengthAuto)
	require.NoError(t, err)
	require.NoError(t, Verify(&pub, crypto.SHA256, hashed, sig, 94))

	sig, err = Sign(rng, key, crypto.SHA256, hashed, SaltLengthEqualsHash)
	require.NoError(t, err)
	require.NoError(t, Verify(&pub, crypto.SHA256, hashed, sig, 32))

	_, err = Sign(rng, key, crypto.SHA256, hashed, -7)
	assert.ErrorIs(t, err, rsa.ErrInvalidPaddingScheme)

	_, err = Sign(nil, key, crypto.SHA256, hashed, 32)
	assert.ErrorIs(t, err, rsa.ErrInternal)
}

func TestEmsaPSSEncodeBounds(t *testing.T) {
	hashed := sha256Of([]byte("x"))

	_, err := EmsaPSSEncode([]byte("short"), make([]byte, 32), 1022, sha256.New())
	assert.ErrorIs(t, err, rsa.ErrInputNotHashed)

	// 32 + 32 + 2 bytes cannot fit a 40-byte encoding.
	_, err = EmsaPSSEncode(hashed, make([]byte, 32), 320, sha256.New())
	assert.ErrorIs(t, err, rsa.ErrMessageTooLong)
}

func TestEmsaPSSVerifyStructure(t *testing.T) {
	hashed := sha256Of([]byte("structured"))
	salt := []byte("0123456789abcdef")
	// EmsaPSSVerify unmasks its input in place, so every check below
	// works on a fresh copy of the encoding.
	pristine, err := EmsaPSSEncode(hashed, salt, 1022, sha256.New())
	require.NoError(t, err)
	fresh := func() []byte { return append([]byte(nil), pristine...) }

	require.NoError(t, EmsaPSSVerify(hashed, fresh(), 1022, len(salt), sha256.New()))

	// Trailer byte must be 0xBC.
	bad := fresh()
	bad[len(bad)-1] = 0xcc
	assert.ErrorIs(t, EmsaPSSVerify(hashed, bad, 1022, len(salt), sha256.New()), rsa.ErrVerification)

	// High bits beyond emBits must be clear.
	bad = fresh()
	bad[0] |= 0x80
	assert.ErrorIs(t, EmsaPSSVerify(hashed, bad, 1022, len(salt), sha256.New()), rsa.ErrVerification)

	// Length mismatch.
	assert.ErrorIs(t, EmsaPSSVerify(hashed, fresh()[:100], 1022, len(salt), sha256.New()), rsa.ErrVerification)
}

func TestKeyWrappers(t *testing.T) {
	key := loadKey(t, k1024P, k1024Q)
	pub := key.Public()
	rng := rand.New(rand.NewSource(23))

	sk := NewSigningKey(rng, key, crypto.SHA256, SaltLengthEqualsHash)
	vk := NewVerifyingKey(&pub, crypto.SHA256, SaltLengthAuto)

	sig, err := sk.Sign([]byte("wrapped"))
	require.NoError(t, err)
	require.NoError(t, vk.Verify([]byte("wrapped"), sig))
	assert.ErrorIs(t, vk.Verify([]byte("unwrapped"), sig), rsa.ErrVerification)

	_, err = sk.SignHash([]byte("nope"))
	assert.ErrorIs(t, err, rsa.ErrInputNotHashed)
	assert.ErrorIs(t, vk.VerifyHash([]byte("nope"), sig), rsa.ErrVerification)
}
