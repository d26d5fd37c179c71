// Package pkcs1v15 implements the PKCS #1 v1.5 encryption and
// signature schemes from RFC 8017 sections 7.2 and 8.2 over any uintn
// backend. The unpadding path never branches on secret data; every
// structural check is folded into one accumulator and all failure
// causes collapse into a single error.
package pkcs1v15

import (
	"crypto"
	"io"

	"github.com/go-i2p/logger"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/uintn"
)

var log = logger.GetGoI2PLogger()

// Encrypt pads msg per EME-PKCS1-v1_5 and encrypts it with pub. The
// ciphertext is exactly pub.Size() bytes.
func Encrypt[T uintn.UintN[T]](random io.Reader, pub *rsa.PublicKey[T], msg []byte) ([]byte, error) {
	k := pub.Size()
	em, err := EncryptPad(random, msg, k)
	if err != nil {
		return nil, err
	}
	m, err := rsa.IntFromBytes[T](em)
	if err != nil {
		return nil, err
	}
	return rsa.IntToBytes(rsa.Encrypt(pub, m), k)
}

// Decrypt decrypts ciphertext with priv and strips the EME-PKCS1-v1_5
// padding. When random is non-nil the private operation is blinded.
// Every failure reports rsa.ErrDecryption; distinguishing padding
// failures from size failures would reopen the Bleichenbacher oracle.
func Decrypt[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], ciphertext []byte) ([]byte, error) {
	k := priv.Size()
	if k < 11 || len(ciphertext) != k {
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
	return DecryptUnpad(em)
}

// Sign signs a digest per RSASSA-PKCS1-v1_5. hashed must be the output
// of hash over the message; its length is checked against the hash.
// The private operation is always round-trip checked, and blinded when
// random is non-nil.
func Sign[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], hash crypto.Hash, hashed []byte) ([]byte, error) {
	prefix, err := GeneratePrefix(hash)
	if err != nil {
		return nil, err
	}
	if len(hashed) != hash.Size() {
		return nil, rsa.ErrInputNotHashed
	}
	return signWithPrefix(random, priv, prefix, hashed)
}

func signWithPrefix[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], prefix, hashed []byte) ([]byte, error) {
	k := priv.Size()
	em, err := SignPad(prefix, hashed, k)
	if err != nil {
		return nil, err
	}
	m, err := rsa.IntFromBytes[T](em)
	if err != nil {
		return nil, err
	}
	s, err := rsa.DecryptAndCheck(random, priv, m)
	if err != nil {
		return nil, err
	}
	return rsa.IntToBytes(s, k)
}

// Verify checks a RSASSA-PKCS1-v1_5 signature over hashed. Like the
// decryption path it collapses every failure into rsa.ErrVerification.
func Verify[T uintn.UintN[T]](pub *rsa.PublicKey[T], hash crypto.Hash, hashed, sig []byte) error {
	prefix, err := GeneratePrefix(hash)
	if err != nil {
		return err
	}
	if len(hashed) != hash.Size() {
		return rsa.ErrInputNotHashed
	}
	return verifyWithPrefix(pub, prefix, hashed, sig)
}

func verifyWithPrefix[T uintn.UintN[T]](pub *rsa.PublicKey[T], prefix, hashed, sig []byte) error {
	k := pub.Size()
	if len(sig) != k {
		return rsa.ErrVerification
	}
	s, err := rsa.IntFromBytes[T](sig)
	if err != nil {
		return rsa.ErrVerification
	}
	em, err := rsa.IntToBytes(rsa.Encrypt(pub, s), k)
	if err != nil {
		return rsa.ErrVerification
	}
	return SignUnpad(prefix, hashed, em)
}
