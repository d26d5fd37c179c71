// Package oaep implements the RSAES-OAEP encryption scheme from RFC
// 8017 section 7.1 over any uintn backend. The scheme takes two hash
// functions: one for the label and one for MGF1; most callers use the
// same hash for both.
package oaep

import (
	"hash"
	"io"

	"github.com/go-i2p/logger"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/uintn"
)

var log = logger.GetGoI2PLogger()

// maxLabelLen caps the label at 2^61 - 1 bytes, the SHA-1/SHA-256
// input limit RFC 8017 inherits. Unreachable on real hardware; the
// check exists so the limit is enforced rather than assumed.
const maxLabelLen = 1 << 61

// Encrypt pads msg per EME-OAEP with the given label and encrypts it
// with pub. The ciphertext is exactly pub.Size() bytes.
func Encrypt[T uintn.UintN[T]](random io.Reader, pub *rsa.PublicKey[T], h, mgfHash hash.Hash, msg, label []byte) ([]byte, error) {
	k := pub.Size()
	em, err := EncryptPad(random, h, mgfHash, msg, label, k)
	if err != nil {
		return nil, err
	}
	m, err := rsa.IntFromBytes[T](em)
	if err != nil {
		return nil, err
	}
	return rsa.IntToBytes(rsa.Encrypt(pub, m), k)
}

// Decrypt decrypts ciphertext with priv and strips the EME-OAEP
// padding. The label must match the one used at encryption. When
// random is non-nil the private operation is blinded. Every failure
// reports rsa.ErrDecryption; a Manger oracle is one distinguishable
// error away.
func Decrypt[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], h, mgfHash hash.Hash, ciphertext, label []byte) ([]byte, error) {
	k := priv.Size()
	if len(ciphertext) != k || k < 2*h.Size()+2 {
		return nil, rsa.ErrDecryption
	}
	c, err := rsa.IntFromBytes[T](ciphertext)
	if err != nil {
		return nil, rsa.ErrDecryption
	}
	m, err := rsa.Decrypt(random, priv, c)
	if err != nil {
		return nil, rsa.ErrDecryption
	}
	em, err := rsa.IntToBytes(m, k)
	if err != nil {
		return nil, rsa.ErrDecryption
	}
	return DecryptUnpad(h, mgfHash, em, label)
}
