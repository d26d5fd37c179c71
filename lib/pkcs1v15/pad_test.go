package pkcs1v15

import (
	"bytes"
	"crypto"
	_ "crypto/sha1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-i2p/gorsa/lib/rsa"
)

// zeroReader yields zero bytes forever, simulating a broken RNG.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestEncryptPadStructure(t *testing.T) {
	msg := []byte("hello world!")
	em, err := EncryptPad(constReader(0xaa), msg, 32)
	require.NoError(t, err)

	want := append([]byte{0x00, 0x02}, bytes.Repeat([]byte{0xaa}, 17)...)
	want = append(want, 0x00)
	want = append(want, msg...)
	assert.Equal(t, want, em)
}

func TestEncryptPadBounds(t *testing.T) {
	_, err := EncryptPad(constReader(1), []byte("x"), 10)
	assert.ErrorIs(t, err, rsa.ErrInvalidPadLen)

	// Largest message leaves exactly eight padding bytes.
	em, err := EncryptPad(constReader(1), make([]byte, 21), 32)
	require.NoError(t, err)
	assert.Len(t, em, 32)

	_, err = EncryptPad(constReader(1), make([]byte, 22), 32)
	assert.ErrorIs(t, err, rsa.ErrMessageTooLong)
}

func TestEncryptPadBrokenRNG(t *testing.T) {
	_, err := EncryptPad(zeroReader{}, []byte("x"), 32)
	assert.ErrorIs(t, err, rsa.ErrInternal)
}

func TestDecryptUnpad(t *testing.T) {
	msg := []byte("payload")
	em, err := EncryptPad(constReader(0x55), msg, 32)
	require.NoError(t, err)

	got, err := DecryptUnpad(em)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestDecryptUnpadRejections(t *testing.T) {
	good, err := EncryptPad(constReader(0x55), []byte("payload"), 32)
	require.NoError(t, err)

	mutate := func(f func(em []byte)) []byte {
		em := append([]byte(nil), good...)
		f(em)
		return em
	}

	cases := map[string][]byte{
		"wrong first byte":  mutate(func(em []byte) { em[0] = 1 }),
		"wrong block type":  mutate(func(em []byte) { em[1] = 1 }),
		"separator missing": mutate(func(em []byte) { em[32-8] = 0x55 }),
		"short padding": {
			0x00, 0x02, 0x55, 0x55, 0x55, 0x00, 1, 2, 3, 4, 5, 6,
			7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
			21, 22, 23, 24, 25, 26,
		},
		"too short": good[:10],
	}
	for name, em := range cases {
		_, err := DecryptUnpad(em)
		assert.ErrorIs(t, err, rsa.ErrDecryption, name)
	}
}

func TestSignPadStructure(t *testing.T) {
	prefix, err := GeneratePrefix(crypto.SHA256)
	require.NoError(t, err)
	hashed := sha256Of([]byte("abc"))

	em, err := SignPad(prefix, hashed, 128)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), em[0])
	assert.Equal(t, byte(0x01), em[1])
	tLen := len(prefix) + len(hashed)
	for _, b := range em[2 : 128-tLen-1] {
		assert.Equal(t, byte(0xff), b)
	}
	assert.Equal(t, byte(0x00), em[128-tLen-1])
	assert.True(t, bytes.HasSuffix(em, hashed))

	require.NoError(t, SignUnpad(prefix, hashed, em))

	em[40] ^= 1
	assert.ErrorIs(t, SignUnpad(prefix, hashed, em), rsa.ErrVerification)

	_, err = SignPad(prefix, hashed, len(prefix)+len(hashed)+10)
	assert.ErrorIs(t, err, rsa.ErrMessageTooLong)
}

func TestGeneratePrefix(t *testing.T) {
	prefix, err := GeneratePrefix(crypto.SHA256)
	require.NoError(t, err)
	assert.Equal(t,
		[]byte{0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20},
		prefix)

	sha1Prefix, err := GeneratePrefix(crypto.SHA1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x14), sha1Prefix[len(sha1Prefix)-1])

	_, err = GeneratePrefix(crypto.MD4)
	assert.ErrorIs(t, err, rsa.ErrInvalidPaddingScheme)

	// Callers get a private copy.
	prefix[0] = 0xff
	again, err := GeneratePrefix(crypto.SHA256)
	require.NoError(t, err)
	assert.Equal(t, byte(0x30), again[0])
}
