package pss

import (
	"bytes"
	"hash"

	"github.com/go-i2p/gorsa/lib/ct"
	"github.com/go-i2p/gorsa/lib/mgf"
	"github.com/go-i2p/gorsa/lib/rsa"
)

// EmsaPSSEncode builds the EMSA-PSS encoding of mHash into emBits
// bits per RFC 8017 9.1.1:
//
//	EM = maskedDB || H || 0xBC
//	DB = PS || 0x01 || salt
//	H  = Hash(0x00*8 || mHash || salt)
//
// The unused high bits of the first byte are cleared so the encoding
// stays below 2^emBits.
func EmsaPSSEncode(mHash, salt []byte, emBits int, h hash.Hash) ([]byte, error) {
	hLen := h.Size()
	sLen := len(salt)
	emLen := (emBits + 7) / 8

	if len(mHash) != hLen {
		return nil, rsa.ErrInputNotHashed
	}
	if emLen < hLen+sLen+2 {
		return nil, rsa.ErrMessageTooLong
	}

	em := make([]byte, emLen)
	db := em[:emLen-hLen-1]
	hOut := em[emLen-hLen-1 : emLen-1]

	var prefix [8]byte
	h.Reset()
	h.Write(prefix[:])
	h.Write(mHash)
	h.Write(salt)
	hashed := h.Sum(nil)
	copy(hOut, hashed)

	db[emLen-sLen-hLen-2] = 0x01
	copy(db[len(db)-sLen:], salt)

	mgf.MGF1XOR(db, h, hOut)

	db[0] &= 0xff >> (8*emLen - emBits)
	em[emLen-1] = 0xbc
	return em, nil
}

// EmsaPSSVerify checks that em is a valid EMSA-PSS encoding of mHash
// per RFC 8017 9.1.2. sLen is the expected salt length, or
// SaltLengthAuto to recover it from the encoding. Structural checks on
// public data short-circuit; the padding, separator and hash checks
// are folded into one constant-time verdict.
func EmsaPSSVerify(mHash, em []byte, emBits, sLen int, h hash.Hash) error {
	hLen := h.Size()
	if len(mHash) != hLen {
		return rsa.ErrVerification
	}
	emLen := (emBits + 7) / 8
	if emLen != len(em) {
		return rsa.ErrVerification
	}
	if emLen < hLen+sLen+2 {
		return rsa.ErrVerification
	}
	if em[emLen-1] != 0xbc {
		return rsa.ErrVerification
	}

	db := em[:emLen-hLen-1]
	hOut := em[emLen-hLen-1 : emLen-1]

	bitMask := byte(0xff >> (8*emLen - emBits))
	if em[0]&^bitMask != 0 {
		return rsa.ErrVerification
	}

	mgf.MGF1XOR(db, h, hOut)
	db[0] &= bitMask

	if sLen == SaltLengthAuto {
		psLen := bytes.IndexByte(db, 0x01)
		if psLen < 0 {
			return rsa.ErrVerification
		}
		sLen = len(db) - psLen - 1
	}

	psLen := emLen - hLen - sLen - 2
	if psLen < 0 {
		return rsa.ErrVerification
	}
	salt := db[len(db)-sLen:]

	var prefix [8]byte
	h.Reset()
	h.Write(prefix[:])
	h.Write(mHash)
	h.Write(salt)
	expected := h.Sum(nil)

	ok := ct.AllZeros(db[:psLen])
	ok &= ct.ByteEq(db[psLen], 0x01)
	ok &= ct.Equal(hOut, expected)
	if ok != 1 {
		return rsa.ErrVerification
	}
	return nil
}
