package oaep

import (
	"hash"
	"io"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/types"
	"github.com/go-i2p/gorsa/lib/uintn"
)

// EncryptingKey binds a public key to an OAEP configuration: label
// hash, MGF1 hash and label.
type EncryptingKey[T uintn.UintN[T]] struct {
	random  io.Reader
	pub     *rsa.PublicKey[T]
	newHash func() hash.Hash
	newMGF  func() hash.Hash
	label   []byte
}

// NewEncryptingKey builds an encrypting key. newMGF may be nil, in
// which case newHash serves both roles.
func NewEncryptingKey[T uintn.UintN[T]](random io.Reader, pub *rsa.PublicKey[T], newHash, newMGF func() hash.Hash, label []byte) *EncryptingKey[T] {
	if newMGF == nil {
		newMGF = newHash
	}
	return &EncryptingKey[T]{random: random, pub: pub, newHash: newHash, newMGF: newMGF, label: label}
}

func (k *EncryptingKey[T]) Encrypt(data []byte) ([]byte, error) {
	return Encrypt(k.random, k.pub, k.newHash(), k.newMGF(), data, k.label)
}

// DecryptingKey binds a private key to an OAEP configuration.
type DecryptingKey[T uintn.UintN[T]] struct {
	random  io.Reader
	priv    *rsa.PrivateKey[T]
	newHash func() hash.Hash
	newMGF  func() hash.Hash
	label   []byte
}

func NewDecryptingKey[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], newHash, newMGF func() hash.Hash, label []byte) *DecryptingKey[T] {
	if newMGF == nil {
		newMGF = newHash
	}
	return &DecryptingKey[T]{random: random, priv: priv, newHash: newHash, newMGF: newMGF, label: label}
}

func (k *DecryptingKey[T]) Decrypt(data []byte) ([]byte, error) {
	return Decrypt(k.random, k.priv, k.newHash(), k.newMGF(), data, k.label)
}

var (
	_ types.Encrypter = (*EncryptingKey[uintn.Big])(nil)
	_ types.Decrypter = (*DecryptingKey[uintn.Big])(nil)
)
