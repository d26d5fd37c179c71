package oaep

import (
	"hash"
	"io"

	"github.com/samber/oops"

	"github.com/go-i2p/gorsa/lib/ct"
	"github.com/go-i2p/gorsa/lib/mgf"
	"github.com/go-i2p/gorsa/lib/rsa"
)

// EncryptPad builds the EME-OAEP encoding
//
//	EM = 0x00 || maskedSeed || maskedDB
//	DB = lHash || PS || 0x01 || msg
//
// for a key of k bytes. The data block is masked with MGF1 over the
// seed, then the seed with MGF1 over the masked data block.
func EncryptPad(random io.Reader, h, mgfHash hash.Hash, msg, label []byte, k int) ([]byte, error) {
	if uint64(len(label)) >= maxLabelLen {
		return nil, rsa.ErrLabelTooLong
	}
	hLen := h.Size()
	if k < 2*hLen+2 || len(msg) > k-2*hLen-2 {
		return nil, rsa.ErrMessageTooLong
	}

	h.Reset()
	h.Write(label)
	lHash := h.Sum(nil)

	em := make([]byte, k)
	seed := em[1 : 1+hLen]
	db := em[1+hLen:]

	copy(db, lHash)
	db[len(db)-len(msg)-1] = 1
	copy(db[len(db)-len(msg):], msg)

	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, oops.Errorf("reading OAEP seed: %w", err)
	}

	mgf.MGF1XOR(db, mgfHash, seed)
	mgf.MGF1XOR(seed, mgfHash, db)
	return em, nil
}

// DecryptUnpad strips the EME-OAEP encoding from em. The label hash
// comparison and the payload scan run in constant time with one final
// branch; every malformed structure is rsa.ErrDecryption.
func DecryptUnpad(h, mgfHash hash.Hash, em, label []byte) ([]byte, error) {
	if uint64(len(label)) >= maxLabelLen {
		return nil, rsa.ErrDecryption
	}
	hLen := h.Size()
	if len(em) < 2*hLen+2 {
		return nil, rsa.ErrDecryption
	}

	h.Reset()
	h.Write(label)
	lHash := h.Sum(nil)

	firstByteIsZero := ct.ByteEq(em[0], 0)

	seed := em[1 : 1+hLen]
	db := em[1+hLen:]

	mgf.MGF1XOR(seed, mgfHash, db)
	mgf.MGF1XOR(db, mgfHash, seed)

	lHashGood := ct.Equal(db[:hLen], lHash)

	// Scan past the zero padding for the 0x01 separator. Any nonzero
	// byte before it poisons the invalid flag without stopping the
	// scan.
	var lookingFor, index, invalid int
	lookingFor = 1
	rest := db[hLen:]
	for i := 0; i < len(rest); i++ {
		isZero := ct.ByteEq(rest[i], 0)
		isOne := ct.ByteEq(rest[i], 1)
		index = ct.Select(lookingFor&isOne, i, index)
		lookingFor = ct.Select(isOne, 0, lookingFor)
		invalid = ct.Select(lookingFor&^isZero, 1, invalid)
	}

	if firstByteIsZero&lHashGood&^invalid&^lookingFor != 1 {
		return nil, rsa.ErrDecryption
	}
	return rest[index+1:], nil
}
