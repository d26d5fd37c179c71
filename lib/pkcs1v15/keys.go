package pkcs1v15

import (
	"crypto"
	"io"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/types"
	"github.com/go-i2p/gorsa/lib/uintn"
)

// SigningKey binds a private key to a hash function for RSASSA-PKCS1-
// v1_5 signing. The DigestInfo prefix is resolved once at construction.
type SigningKey[T uintn.UintN[T]] struct {
	random io.Reader
	priv   *rsa.PrivateKey[T]
	hash   crypto.Hash
	prefix []byte
}

// NewSigningKey builds a signing key. random blinds every private
// operation; pass nil to disable blinding.
func NewSigningKey[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], hash crypto.Hash) (*SigningKey[T], error) {
	prefix, err := GeneratePrefix(hash)
	if err != nil {
		return nil, err
	}
	return &SigningKey[T]{random: random, priv: priv, hash: hash, prefix: prefix}, nil
}

func (k *SigningKey[T]) Sign(data []byte) ([]byte, error) {
	h := k.hash.New()
	h.Write(data)
	return k.SignHash(h.Sum(nil))
}

func (k *SigningKey[T]) SignHash(hashed []byte) ([]byte, error) {
	if len(hashed) != k.hash.Size() {
		return nil, rsa.ErrInputNotHashed
	}
	return signWithPrefix(k.random, k.priv, k.prefix, hashed)
}

// VerifyingKey binds a public key to a hash function for RSASSA-PKCS1-
// v1_5 verification.
type VerifyingKey[T uintn.UintN[T]] struct {
	pub    *rsa.PublicKey[T]
	hash   crypto.Hash
	prefix []byte
}

func NewVerifyingKey[T uintn.UintN[T]](pub *rsa.PublicKey[T], hash crypto.Hash) (*VerifyingKey[T], error) {
	prefix, err := GeneratePrefix(hash)
	if err != nil {
		return nil, err
	}
	return &VerifyingKey[T]{pub: pub, hash: hash, prefix: prefix}, nil
}

func (k *VerifyingKey[T]) Verify(data, sig []byte) error {
	h := k.hash.New()
	h.Write(data)
	return k.VerifyHash(h.Sum(nil), sig)
}

func (k *VerifyingKey[T]) VerifyHash(hashed, sig []byte) error {
	if len(hashed) != k.hash.Size() {
		return rsa.ErrVerification
	}
	return verifyWithPrefix(k.pub, k.prefix, hashed, sig)
}

// EncryptingKey wraps a public key for EME-PKCS1-v1_5 encryption.
type EncryptingKey[T uintn.UintN[T]] struct {
	random io.Reader
	pub    *rsa.PublicKey[T]
}

func NewEncryptingKey[T uintn.UintN[T]](random io.Reader, pub *rsa.PublicKey[T]) *EncryptingKey[T] {
	return &EncryptingKey[T]{random: random, pub: pub}
}

func (k *EncryptingKey[T]) Encrypt(data []byte) ([]byte, error) {
	return Encrypt(k.random, k.pub, data)
}

// DecryptingKey wraps a private key for EME-PKCS1-v1_5 decryption.
type DecryptingKey[T uintn.UintN[T]] struct {
	random io.Reader
	priv   *rsa.PrivateKey[T]
}

func NewDecryptingKey[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T]) *DecryptingKey[T] {
	return &DecryptingKey[T]{random: random, priv: priv}
}

func (k *DecryptingKey[T]) Decrypt(data []byte) ([]byte, error) {
	return Decrypt(k.random, k.priv, data)
}

var (
	_ types.Signer    = (*SigningKey[uintn.Big])(nil)
	_ types.Verifier  = (*VerifyingKey[uintn.Big])(nil)
	_ types.Encrypter = (*EncryptingKey[uintn.Big])(nil)
	_ types.Decrypter = (*DecryptingKey[uintn.Big])(nil)
)
