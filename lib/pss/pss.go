// Package pss implements the RSASSA-PSS probabilistic signature scheme
// from RFC 8017 section 8.1 over any uintn backend. The encoding
// target is one bit narrower than the modulus, so for keys whose bit
// length is congruent to 1 mod 8 the encoded message is a full byte
// shorter than the signature.
package pss

import (
	"crypto"
	"io"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/uintn"
)

var log = logger.GetGoI2PLogger()

// Salt length sentinels, matching crypto/rsa's PSSOptions convention.
const (
	// SaltLengthAuto means the largest salt that fits when signing,
	// and salt recovery from the encoding when verifying.
	SaltLengthAuto = 0
	// SaltLengthEqualsHash uses a salt exactly as long as the digest.
	SaltLengthEqualsHash = -1
)

// Sign signs a digest per RSASSA-PSS. hashed must be the output of
// hash over the message. random supplies the salt and blinds the
// private operation; it must not be nil.
func Sign[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], hash crypto.Hash, hashed []byte, saltLength int) ([]byte, error) {
	if random == nil {
		log.Error("PSS signing requires a random source for the salt")
		return nil, rsa.ErrInternal
	}

	emBits := priv.N().Bits() - 1
	emLen := (emBits + 7) / 8

	switch saltLength {
	case SaltLengthAuto:
		saltLength = emLen - 2 - hash.Size()
		if saltLength < 0 {
			return nil, rsa.ErrMessageTooLong
		}
	case SaltLengthEqualsHash:
		saltLength = hash.Size()
	default:
		if saltLength < 0 {
			return nil, rsa.ErrInvalidPaddingScheme
		}
	}

	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, oops.Errorf("reading PSS salt: %w", err)
	}
	return signWithSalt(random, priv, hash, hashed, salt)
}

func signWithSalt[T uintn.UintN[T]](random io.Reader, priv *rsa.PrivateKey[T], hash crypto.Hash, hashed, salt []byte) ([]byte, error) {
	emBits := priv.N().Bits() - 1
	em, err := EmsaPSSEncode(hashed, salt, emBits, hash.New())
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
	return rsa.IntToBytes(s, priv.Size())
}

// Verify checks a RSASSA-PSS signature over hashed. saltLength is the
// expected salt length, SaltLengthEqualsHash, or SaltLengthAuto to
// accept any. Every failure reports rsa.ErrVerification.
func Verify[T uintn.UintN[T]](pub *rsa.PublicKey[T], hash crypto.Hash, hashed, sig []byte, saltLength int) error {
	if len(sig) != pub.Size() {
		return rsa.ErrVerification
	}
	s, err := rsa.IntFromBytes[T](sig)
	if err != nil {
		return rsa.ErrVerification
	}
	m := rsa.Encrypt(pub, s)

	emBits := pub.N().Bits() - 1
	emLen := (emBits + 7) / 8
	// When the modulus bit length is 1 mod 8 the raw result is a byte
	// wider than the encoding; a valid encoding fits emLen bytes and
	// anything wider is a forgery.
	em, err := rsa.IntToBytes(m, emLen)
	if err != nil {
		return rsa.ErrVerification
	}

	if saltLength == SaltLengthEqualsHash {
		saltLength = hash.Size()
	}
	return EmsaPSSVerify(hashed, em, emBits, saltLength, hash.New())
}
