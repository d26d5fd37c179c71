// Package mgf implements the MGF1 mask generation function from RFC
// 8017 B.2.1, used by both the OAEP and PSS padding engines.
package mgf

import "hash"

// MGF1XOR XORs the bytes of out with the MGF1 output stream derived
// from seed. The stream is hash(seed || counter) for a 4-byte
// big-endian counter starting at zero, truncated to len(out).
func MGF1XOR(out []byte, h hash.Hash, seed []byte) {
	var counter [4]byte
	var digest []byte

	done := 0
	for done < len(out) {
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		digest = h.Sum(digest[:0])

		for i := 0; i < len(digest) && done < len(out); i++ {
			out[done] ^= digest[i]
			done++
		}
		incCounter(&counter)
	}
}

func incCounter(c *[4]byte) {
	if c[3]++; c[3] != 0 {
		return
	}
	if c[2]++; c[2] != 0 {
		return
	}
	if c[1]++; c[1] != 0 {
		return
	}
	c[0]++
}
