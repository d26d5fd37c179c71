package rsa

import (
	"io"

	"github.com/samber/oops"

	"github.com/go-i2p/gorsa/lib/modmath"
	"github.com/go-i2p/gorsa/lib/uintn"
)

// maxBlindAttempts bounds the search for an invertible blinding factor.
// With an honest RNG a single attempt almost always succeeds; the cap
// exists so a broken RNG cannot spin forever.
const maxBlindAttempts = 32

// Encrypt performs raw RSA exponentiation of m with the public key. No
// padding is applied; callers must always go through a padding scheme.
func Encrypt[T uintn.UintN[T]](pub *PublicKey[T], m T) T {
	return modmath.Exp(m, pub.e, pub.n)
}

// Decrypt performs raw RSA exponentiation of c with the private key.
// No padding is removed.
//
// When random is non-nil the operation is blinded: c is multiplied by
// r^e for a random invertible r before exponentiation and the result
// multiplied by r⁻¹ after, so the timing of the private-exponent path
// does not depend on c. When the key carries precomputed values, the
// exponentiation itself uses the CRT split per prime.
func Decrypt[T uintn.UintN[T]](random io.Reader, priv *PrivateKey[T], c T) (T, error) {
	var zero T
	if c.Cmp(priv.pub.n) >= 0 {
		return zero, ErrDecryption
	}

	var rInv T
	blinded := false
	if random != nil {
		r, ri, err := blindingFactor(random, priv)
		if err != nil {
			return zero, err
		}
		rpowe := modmath.Exp(r, priv.pub.e, priv.pub.n)
		c = modmath.Mul(c, rpowe, priv.pub.n)
		rInv = ri
		blinded = true
	}

	m := privateExp(priv, c)

	if blinded {
		m = modmath.Mul(m, rInv, priv.pub.n)
	}
	return m, nil
}

// DecryptAndCheck is Decrypt followed by a verification that the
// public operation round-trips the result, guarding against fault
// attacks on the CRT path.
func DecryptAndCheck[T uintn.UintN[T]](random io.Reader, priv *PrivateKey[T], c T) (T, error) {
	var zero T
	m, err := Decrypt(random, priv, c)
	if err != nil {
		return zero, err
	}
	check := Encrypt(&priv.pub, m)
	if check.Cmp(c) != 0 {
		log.Error("RSA internal error: CRT result failed public round-trip")
		return zero, ErrInternal
	}
	return m, nil
}

// privateExp computes c^d mod n, via the CRT split when precomputed
// values are present.
func privateExp[T uintn.UintN[T]](priv *PrivateKey[T], c T) T {
	n := priv.pub.n
	if priv.precomputed == nil {
		return modmath.Exp(c, priv.d, n)
	}

	pre := priv.precomputed
	p, q := priv.primes[0], priv.primes[1]

	// m = c^dq mod q + h·q, where h = qinv·(c^dp mod p - m2) mod p.
	m1 := modmath.Exp(c, pre.Dp, p)
	m2 := modmath.Exp(c, pre.Dq, q)
	h := modmath.Mul(pre.QInv, modmath.Sub(m1, m2, p), p)
	m := modmath.Add(m2, modmath.Mul(h, q, n), n)

	// Fold in the remaining primes with their running-product
	// coefficients.
	for i, prime := range priv.primes[2:] {
		crt := pre.CRTValues[i]
		mi := modmath.Exp(c, crt.Exp, prime)
		diff := modmath.Sub(mi, m, prime)
		hi := modmath.Mul(diff, crt.Coeff, prime)
		m = modmath.Add(m, modmath.Mul(hi, crt.R, n), n)
	}
	return m
}

// blindingFactor draws a random r invertible mod n and returns it with
// its inverse.
func blindingFactor[T uintn.UintN[T]](random io.Reader, priv *PrivateKey[T]) (r, rInv T, err error) {
	var zero T
	buf := make([]byte, priv.Size())
	for i := 0; i < maxBlindAttempts; i++ {
		if _, err := io.ReadFull(random, buf); err != nil {
			return zero, zero, oops.Errorf("reading blinding factor: %w", err)
		}
		cand, ok := zero.SetBytes(buf)
		if !ok {
			continue
		}
		cand = cand.Mod(priv.pub.n)
		if cand.IsZero() {
			continue
		}
		inv, ok := modInverse(cand, priv.pub.n)
		if !ok {
			continue
		}
		return cand, inv, nil
	}
	log.Error("RSA blinding: no invertible factor found, RNG broken?")
	return zero, zero, ErrInternal
}

// computeModulus multiplies the primes together. Callers have already
// checked the product fits the backend width.
func computeModulus[T uintn.UintN[T]](primes []T) T {
	n := primes[0].SetUint64(1)
	for _, p := range primes {
		n = n.Mul(p)
	}
	return n
}

// PrivateExponentEulerTotient derives d from the primes and e using
// Euler's totient Π(p-1). The result is a valid private exponent but
// not necessarily the FIPS 186-4 minimal one; see
// PrivateExponentCarmichael.
func PrivateExponentEulerTotient[T uintn.UintN[T]](primes []T, e T) (T, error) {
	var zero T
	if len(primes) < 2 {
		return zero, ErrInvalidPrime
	}
	one := e.SetUint64(1)
	totient := one
	for _, p := range primes {
		totient = totient.Mul(p.WrappingSub(one))
	}
	d, ok := modInverse(e, totient)
	if !ok {
		// e shares a factor with some (p-1); surfacing this beats a
		// silent wrong answer.
		return zero, ErrInvalidExponent
	}
	return d, nil
}

// PrivateExponentCarmichael derives d from the primes and e using the
// Carmichael function λ(n) = lcm(p-1, q-1, ...), per NIST SP 800-56B
// Section 6.2.1. FIPS 186-4 requires d < λ(n), which Euler's totient
// does not guarantee.
func PrivateExponentCarmichael[T uintn.UintN[T]](primes []T, e T) (T, error) {
	var zero T
	if len(primes) < 2 {
		return zero, ErrInvalidPrime
	}
	one := e.SetUint64(1)
	lambda := primes[0].WrappingSub(one)
	for _, p := range primes[1:] {
		lambda = lcm(lambda, p.WrappingSub(one))
	}
	d, ok := modInverse(e, lambda)
	if !ok {
		return zero, ErrInvalidExponent
	}
	return d, nil
}

// gcd is the Euclidean algorithm.
func gcd[T uintn.UintN[T]](a, b T) T {
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

// lcm computes a·b / gcd(a, b), dividing first so the product stays in
// width.
func lcm[T uintn.UintN[T]](a, b T) T {
	g := gcd(a, b)
	return a.Div(g).Mul(b)
}

// modInverse returns a⁻¹ mod m via the extended Euclidean algorithm.
// The Bézout coefficients are tracked modulo m the whole way, so no
// signed arithmetic is needed. Returns false when a is not invertible.
func modInverse[T uintn.UintN[T]](a, m T) (T, bool) {
	var zero T
	one := m.SetUint64(1)
	if m.IsZero() || m.Cmp(one) == 0 {
		return zero, false
	}
	r0, r1 := m, a.Mod(m)
	t0, t1 := m.SetUint64(0), one
	for !r1.IsZero() {
		q := r0.Div(r1)
		r0, r1 = r1, r0.Mod(r1)
		qt := modmath.Mul(q, t1, m)
		t0, t1 = t1, modmath.Sub(t0, qt, m)
	}
	if r0.Cmp(one) != 0 {
		return zero, false
	}
	return t0, true
}

// RecoverPrimes factors n given the public and private exponents, per
// NIST SP 800-56B Appendix C.2. It only works for two-factor moduli
// with e strictly between 2^16 and 2^256, and it needs the backend to
// hold the full product d·e, so fixed-width callers must use a backend
// at least 64 bits wider than the modulus (or the Big backend).
func RecoverPrimes[T uintn.UintN[T]](n, e, d T) (p, q T, err error) {
	var zero T
	one := n.SetUint64(1)

	if e.Bits() <= 16 || e.Bits() > 256 {
		return zero, zero, ErrInvalidExponent
	}
	if d.Bits()+e.Bits() > n.Width() {
		log.Error("RSA prime recovery: backend too narrow for d*e")
		return zero, zero, ErrInternal
	}

	// k = d·e - 1 is a multiple of λ(n), hence even.
	k := d.Mul(e).WrappingSub(one)
	if !k.IsEven() {
		return zero, zero, ErrInvalidExponent
	}

	// Write k = 2^t · r with r odd.
	t := 0
	r := k
	for r.IsEven() {
		r = r.Rsh(1)
		t++
	}

	nMinus1 := n.WrappingSub(one)
	for _, a := range []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97} {
		y := modmath.Exp(n.SetUint64(a), r, n)
		if y.Cmp(one) == 0 || y.Cmp(nMinus1) == 0 {
			continue
		}
		// The last level squares to a^(d·e-1) ≡ 1 mod n, so any y
		// surviving all t levels is a nontrivial root of 1.
		for j := 1; j <= t; j++ {
			z := modmath.Mul(y, y, n)
			if z.Cmp(one) == 0 {
				// y is a nontrivial square root of 1 mod n, so
				// gcd(y-1, n) splits n.
				return splitModulus(n, y.WrappingSub(one))
			}
			if z.Cmp(nMinus1) == 0 {
				break
			}
			y = z
		}
	}
	return zero, zero, ErrInvalidModulus
}

func splitModulus[T uintn.UintN[T]](n, w T) (p, q T, err error) {
	var zero T
	one := n.SetUint64(1)
	g := gcd(w, n)
	if g.Cmp(one) <= 0 || g.Cmp(n) >= 0 {
		return zero, zero, ErrInvalidModulus
	}
	other := n.Div(g)
	if g.Mul(other).Cmp(n) != 0 {
		return zero, zero, ErrInvalidModulus
	}
	if g.Cmp(other) >= 0 {
		return g, other, nil
	}
	return other, g, nil
}
