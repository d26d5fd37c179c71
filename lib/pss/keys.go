package pss

import (
	"crypto"
	"io"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/types"
	"github.com/go-i2p/gorsa/lib/uintn"
)

// SigningKey binds a private key to a hash function and salt length
// for RSASSA-PSS signing.
type SigningKey[T uintn.UintN[T]] struct {
	random     io.Reader
	priv       *rsa.PrivateKey[T]
	hash       crypto.Hash
	saltLength int
}

// NewSigningKey builds a signing key. random must not be nil; PSS
// cannot sign without a salt source.
func NewSigningKey[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], hash crypto.Hash, saltLength int) *SigningKey[T] {
	return &SigningKey[T]{random: random, priv: priv, hash: hash, saltLength: saltLength}
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
	return Sign(k.random, k.priv, k.hash, hashed, k.saltLength)
}

// VerifyingKey binds a public key to a hash function and expected salt
// length for RSASSA-PSS verification.
type VerifyingKey[T uintn.UintN[T]] struct {
	pub        *rsa.PublicKey[T]
	hash       crypto.Hash
	saltLength int
}

func NewVerifyingKey[T uintn.UintN[T]](pub *rsa.PublicKey[T], hash crypto.Hash, saltLength int) *VerifyingKey[T] {
	return &VerifyingKey[T]{pub: pub, hash: hash, saltLength: saltLength}
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
	return Verify(k.pub, k.hash, hashed, sig, k.saltLength)
}

var (
	_ types.Signer   = (*SigningKey[uintn.Big])(nil)
	_ types.Verifier = (*VerifyingKey[uintn.Big])(nil)
)
