package oaep

import (
	"crypto/sha256"
	"crypto/sha512"
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

// OAEP-SHA256 ciphertext of "secret message" with empty label and the
// seed bytes 0x00..0x1f.
const ctSecretMessage = "37a5626402ecb7b8739903db82b8acc36bdf1fe7fcd64844c4fb59b50c1c522a8287d921f053deee55b6dcf734d2ad73c59743dec7ea7df5c246c7a9020fba60373bac0f994f4bb53085074db43b11a7bb2381c00f8b26a20d47dada932b4b0e856ed28741fe784ac7e40714066c9773f37465fd65d40b86d9ba21a0a50212ee"

// countingReader yields 0, 1, 2, ... forever.
type countingReader struct{ next byte }

func (c *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = c.next
		c.next++
	}
	return len(p), nil
}

func testKey1024(t *testing.T) *rsa.PrivateKey[uintn.Big] {
	t.Helper()
	p, ok := uintn.NewBigFromHex(k1024P)
	require.True(t, ok)
	q, ok := uintn.NewBigFromHex(k1024Q)
	require.True(t, ok)
	key, err := rsa.FromPQ(p, q, uintn.NewBig(65537))
	require.NoError(t, err)
	return key
}

func TestEncryptKnownAnswer(t *testing.T) {
	key := testKey1024(t)
	pub := key.Public()

	ct, err := Encrypt(&countingReader{}, &pub, sha256.New(), sha256.New(), []byte("secret message"), nil)
	require.NoError(t, err)
	assert.Equal(t, ctSecretMessage, hex.EncodeToString(ct))

	msg, err := Decrypt[uintn.Big](nil, key, sha256.New(), sha256.New(), ct, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret message"), msg)
}

func TestRoundTripWithLabel(t *testing.T) {
	key := testKey1024(t)
	pub := key.Public()
	rng := rand.New(rand.NewSource(11))
	label := []byte("session 42")

	ct, err := Encrypt(rng, &pub, sha256.New(), sha256.New(), []byte("labelled"), label)
	require.NoError(t, err)

	msg, err := Decrypt(rng, key, sha256.New(), sha256.New(), ct, label)
	require.NoError(t, err)
	assert.Equal(t, []byte("labelled"), msg)

	// A different label yields a different lHash and must fail.
	_, err = Decrypt(rng, key, sha256.New(), sha256.New(), ct, []byte("session 43"))
	assert.ErrorIs(t, err, rsa.ErrDecryption)
}

func TestDecryptRejectsTampering(t *testing.T) {
	key := testKey1024(t)
	pub := key.Public()
	rng := rand.New(rand.NewSource(12))

	ct, err := Encrypt(rng, &pub, sha256.New(), sha256.New(), []byte("payload"), nil)
	require.NoError(t, err)

	bad := append([]byte(nil), ct...)
	bad[17] ^= 0x40
	_, err = Decrypt[uintn.Big](nil, key, sha256.New(), sha256.New(), bad, nil)
	assert.ErrorIs(t, err, rsa.ErrDecryption)

	_, err = Decrypt[uintn.Big](nil, key, sha256.New(), sha256.New(), ct[:64], nil)
	assert.ErrorIs(t, err, rsa.ErrDecryption)

	// Decrypting with the wrong hash cannot recover the label hash.
	_, err = Decrypt[uintn.Big](nil, key, sha512.New(), sha512.New(), ct, nil)
	assert.ErrorIs(t, err, rsa.ErrDecryption)
}

func TestMessageTooLong(t *testing.T) {
	key := testKey1024(t)
	pub := key.Public()

	// k - 2*hLen - 2 = 128 - 64 - 2 = 62 is the limit with SHA-256.
	max := make([]byte, 62)
	_, err := Encrypt(&countingReader{}, &pub, sha256.New(), sha256.New(), max, nil)
	require.NoError(t, err)

	_, err = Encrypt(&countingReader{}, &pub, sha256.New(), sha256.New(), make([]byte, 63), nil)
	assert.ErrorIs(t, err, rsa.ErrMessageTooLong)
}

func TestKeyWrappers(t *testing.T) {
	key := testKey1024(t)
	pub := key.Public()
	rng := rand.New(rand.NewSource(13))

	ek := NewEncryptingKey(rng, &pub, sha256.New, nil, []byte("lbl"))
	dk := NewDecryptingKey(rng, key, sha256.New, nil, []byte("lbl"))

	ct, err := ek.Encrypt([]byte("via wrappers"))
	require.NoError(t, err)
	msg, err := dk.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("via wrappers"), msg)
}

func TestPadUnpadDirect(t *testing.T) {
	em, err := EncryptPad(&countingReader{}, sha256.New(), sha256.New(), []byte("m"), nil, 128)
	require.NoError(t, err)
	assert.Equal(t, byte(0), em[0])

	msg, err := DecryptUnpad(sha256.New(), sha256.New(), em, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("m"), msg)

	// Nonzero leading byte on a fresh encoding. DecryptUnpad unmasks
	// in place, so the first copy is spent.
	em, err = EncryptPad(&countingReader{}, sha256.New(), sha256.New(), []byte("m"), nil, 128)
	require.NoError(t, err)
	em[0] = 1
	_, err = DecryptUnpad(sha256.New(), sha256.New(), em, nil)
	assert.ErrorIs(t, err, rsa.ErrDecryption)
}
