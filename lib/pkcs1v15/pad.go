package pkcs1v15

import (
	"io"

	"github.com/samber/oops"

	"github.com/go-i2p/gorsa/lib/ct"
	"github.com/go-i2p/gorsa/lib/rsa"
)

// nonZeroResampleCap bounds resampling per padding byte. An honest RNG
// hits a zero byte with probability 1/256, so 128 consecutive zeros
// means the RNG is broken, not unlucky.
const nonZeroResampleCap = 128

// EncryptPad builds the EME-PKCS1-v1_5 encoding
//
//	EM = 0x00 || 0x02 || PS || 0x00 || msg
//
// where PS is at least eight nonzero random bytes. k is the target key
// size in bytes.
func EncryptPad(random io.Reader, msg []byte, k int) ([]byte, error) {
	if k < 11 {
		return nil, rsa.ErrInvalidPadLen
	}
	if len(msg) > k-11 {
		return nil, rsa.ErrMessageTooLong
	}
	em := make([]byte, k)
	em[1] = 2
	ps := em[2 : k-len(msg)-1]
	if err := nonZeroRandomBytes(random, ps); err != nil {
		return nil, err
	}
	copy(em[k-len(msg):], msg)
	return em, nil
}

// DecryptUnpad strips the EME-PKCS1-v1_5 encoding from em. The scan
// touches every byte and carries its verdict in constant-time
// accumulators; the single branch at the end reports rsa.ErrDecryption
// for any malformed structure.
func DecryptUnpad(em []byte) ([]byte, error) {
	if len(em) < 11 {
		return nil, rsa.ErrDecryption
	}

	firstByteIsZero := ct.ByteEq(em[0], 0)
	secondByteIsTwo := ct.ByteEq(em[1], 2)

	// index points at the 0x00 separator once found; lookingFor drops
	// to 0 at the first zero byte and freezes index there.
	lookingFor := 1
	index := 0
	for i := 2; i < len(em); i++ {
		isZero := ct.ByteEq(em[i], 0)
		index = ct.Select(lookingFor&isZero, i, index)
		lookingFor = ct.Select(isZero, 0, lookingFor)
	}

	// PS must be at least 8 bytes, so the separator sits at index 10
	// or later.
	validPS := ct.LessOrEq(2+8, index)

	valid := firstByteIsZero & secondByteIsTwo & (^lookingFor & 1) & validPS
	if valid != 1 {
		return nil, rsa.ErrDecryption
	}
	return em[index+1:], nil
}

// SignPad builds the EMSA-PKCS1-v1_5 encoding
//
//	EM = 0x00 || 0x01 || 0xFF.. || 0x00 || prefix || hashed
//
// with at least eight 0xFF bytes.
func SignPad(prefix, hashed []byte, k int) ([]byte, error) {
	tLen := len(prefix) + len(hashed)
	if k < tLen+11 {
		return nil, rsa.ErrMessageTooLong
	}
	em := make([]byte, k)
	em[1] = 1
	for i := 2; i < k-tLen-1; i++ {
		em[i] = 0xff
	}
	copy(em[k-tLen:], prefix)
	copy(em[k-len(hashed):], hashed)
	return em, nil
}

// SignUnpad checks that em carries the EMSA-PKCS1-v1_5 encoding of
// prefix and hashed. The comparison rebuilds the expected encoding and
// compares the whole block in constant time; any mismatch is
// rsa.ErrVerification.
func SignUnpad(prefix, hashed []byte, em []byte) error {
	expected, err := SignPad(prefix, hashed, len(em))
	if err != nil {
		return rsa.ErrVerification
	}
	if ct.Equal(em, expected) != 1 {
		return rsa.ErrVerification
	}
	return nil
}

// nonZeroRandomBytes fills s with random nonzero bytes.
func nonZeroRandomBytes(random io.Reader, s []byte) error {
	if _, err := io.ReadFull(random, s); err != nil {
		return oops.Errorf("reading padding bytes: %w", err)
	}
	var b [1]byte
	for i := range s {
		attempts := 0
		for s[i] == 0 {
			if attempts++; attempts > nonZeroResampleCap {
				log.Error("PKCS#1 v1.5 padding: RNG keeps returning zero bytes")
				return rsa.ErrInternal
			}
			if _, err := io.ReadFull(random, b[:]); err != nil {
				return oops.Errorf("reading padding bytes: %w", err)
			}
			s[i] = b[0]
		}
	}
	return nil
}
