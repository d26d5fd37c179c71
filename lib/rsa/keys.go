// Package rsa implements the RSA key model and the raw modular
// exponentiation primitives, generic over any uintn backend. Padding
// schemes live in lib/pkcs1v15, lib/oaep and lib/pss; this package
// never touches message formatting.
package rsa

import (
	"github.com/go-i2p/logger"

	"github.com/go-i2p/gorsa/lib/modmath"
	"github.com/go-i2p/gorsa/lib/uintn"
)

var log = logger.GetGoI2PLogger()

const (
	// MinPubExponent is the smallest accepted public exponent e.
	MinPubExponent = uint64(2)
	// MaxPubExponent is the largest accepted public exponent e.
	MaxPubExponent = uint64(1<<33 - 1)
	// MaxModulusBits is the default upper bound on the modulus size.
	MaxModulusBits = 4096
)

// PublicKey is the public part of an RSA key. It is immutable after
// construction and safe for concurrent use.
type PublicKey[T uintn.UintN[T]] struct {
	n T
	e T
}

// NewPublicKey validates and builds a public key. It accepts moduli up
// to MaxModulusBits bits.
func NewPublicKey[T uintn.UintN[T]](n, e T) (*PublicKey[T], error) {
	return NewPublicKeyWithMaxSize(n, e, MaxModulusBits)
}

// NewPublicKeyWithMaxSize validates and builds a public key with a
// caller-chosen bound on the modulus size.
func NewPublicKeyWithMaxSize[T uintn.UintN[T]](n, e T, maxBits int) (*PublicKey[T], error) {
	k := &PublicKey[T]{n: n, e: e}
	if err := checkPublicWithMaxSize(k, maxBits); err != nil {
		log.WithFields(logger.Fields{
			"n_bits": n.Bits(),
			"reason": err,
		}).Error("rejecting RSA public key")
		return nil, err
	}
	return k, nil
}

// NewPublicKeyUnchecked builds a public key bypassing all invariant
// checks. Only intended for unusual callers that take responsibility
// for the invariants themselves.
func NewPublicKeyUnchecked[T uintn.UintN[T]](n, e T) *PublicKey[T] {
	return &PublicKey[T]{n: n, e: e}
}

// N returns the modulus.
func (k *PublicKey[T]) N() T { return k.n }

// E returns the public exponent.
func (k *PublicKey[T]) E() T { return k.e }

// Size returns the modulus length in bytes; every RSA-sized quantity
// on the wire is exactly this long, big-endian, left zero padded.
func (k *PublicKey[T]) Size() int {
	return (k.n.Bits() + 7) / 8
}

// checkPublic verifies the public key invariants with the default
// modulus bound.
func checkPublic[T uintn.UintN[T]](k *PublicKey[T]) error {
	return checkPublicWithMaxSize(k, MaxModulusBits)
}

func checkPublicWithMaxSize[T uintn.UintN[T]](k *PublicKey[T], maxBits int) error {
	if k.n.Bits() > maxBits {
		return ErrModulusTooLarge
	}
	e64, ok := k.e.Uint64()
	if !ok {
		return ErrPublicExponentTooLarge
	}
	if k.e.Cmp(k.n) >= 0 || k.n.IsEven() {
		return ErrInvalidModulus
	}
	if k.e.IsEven() {
		return ErrInvalidExponent
	}
	if e64 < MinPubExponent {
		return ErrPublicExponentTooSmall
	}
	if e64 > MaxPubExponent {
		return ErrPublicExponentTooLarge
	}
	return nil
}

// CRTValue holds the precomputed Chinese Remainder Theorem triple for
// the third and subsequent primes of a multiprime key. Due to a
// historical accident the CRT for the first two primes is handled
// differently in PKCS#1, and interoperability is important enough that
// we mirror this split exactly.
type CRTValue[T uintn.UintN[T]] struct {
	// Exp is d mod (prime - 1).
	Exp T
	// Coeff is R⁻¹ mod prime.
	Coeff T
	// R is the product of all preceding primes.
	R T
}

// PrecomputedValues speed up private-key operations.
type PrecomputedValues[T uintn.UintN[T]] struct {
	// Dp is d mod (p - 1).
	Dp T
	// Dq is d mod (q - 1).
	Dq T
	// QInv is q⁻¹ mod p.
	QInv T
	// CRTValues covers primes beyond the first two, in order.
	CRTValues []CRTValue[T]
}

func (p *PrecomputedValues[T]) wipe() {
	p.Dp = p.Dp.Wipe()
	p.Dq = p.Dq.Wipe()
	p.QInv = p.QInv.Wipe()
	for i := range p.CRTValues {
		p.CRTValues[i].Exp = p.CRTValues[i].Exp.Wipe()
		p.CRTValues[i].Coeff = p.CRTValues[i].Coeff.Wipe()
		p.CRTValues[i].R = p.CRTValues[i].R.Wipe()
	}
	p.CRTValues = nil
}

// PrivateKey is a whole RSA key, public and private parts. It has two
// states: without precomputed values (initial) and with them (after
// Precompute); ClearPrecomputed returns it to the initial state. It is
// otherwise immutable.
//
// Callers own the key exclusively and must call Wipe before discarding
// it so the secret scalars do not outlive the key.
type PrivateKey[T uintn.UintN[T]] struct {
	pub         PublicKey[T]
	d           T
	primes      []T
	precomputed *PrecomputedValues[T]
}

// FromPrimes builds a private key from two or more primes and the
// public exponent, deriving the modulus and the private exponent. The
// private exponent uses the Carmichael function λ(n) = lcm(p-1, q-1,
// ...), as FIPS 186-4 requires d < λ(n).
func FromPrimes[T uintn.UintN[T]](primes []T, e T) (*PrivateKey[T], error) {
	if len(primes) < 2 {
		return nil, ErrNprimesTooSmall
	}
	for i, p := range primes {
		for _, q := range primes[:i] {
			if p.Cmp(q) == 0 {
				return nil, ErrInvalidPrime
			}
		}
	}

	sumBits := 0
	for _, p := range primes {
		if p.Cmp(p.SetUint64(1)) <= 0 {
			return nil, ErrInvalidPrime
		}
		sumBits += p.Bits()
	}
	if sumBits > e.Width() {
		return nil, ErrModulusTooLarge
	}

	n := computeModulus(primes)
	d, err := PrivateExponentCarmichael(primes, e)
	if err != nil {
		return nil, err
	}

	pub, err := NewPublicKey(n, e)
	if err != nil {
		return nil, err
	}
	key := &PrivateKey[T]{
		pub:    *pub,
		d:      d,
		primes: append([]T(nil), primes...),
	}
	if err := key.Precompute(); err != nil {
		return nil, err
	}
	log.WithFields(logger.Fields{
		"n_bits": n.Bits(),
		"primes": len(primes),
	}).Debug("RSA private key derived from primes")
	return key, nil
}

// FromPQ builds a private key from exactly two primes.
func FromPQ[T uintn.UintN[T]](p, q, e T) (*PrivateKey[T], error) {
	if p.Cmp(q) == 0 {
		return nil, ErrInvalidPrime
	}
	return FromPrimes([]T{p, q}, e)
}

// FromComponents builds a private key from fully specified components.
// If primes is empty, the two prime factors of n are recovered from
// (n, e, d) by the deterministic method of NIST SP 800-56B Appendix
// C.2; that method requires exactly two factors and e strictly between
// 2^16 and 2^256.
func FromComponents[T uintn.UintN[T]](n, e, d T, primes []T) (*PrivateKey[T], error) {
	pub, err := NewPublicKey(n, e)
	if err != nil {
		return nil, err
	}

	if len(primes) == 0 {
		p, q, err := RecoverPrimes(n, e, d)
		if err != nil {
			return nil, err
		}
		primes = []T{p, q}
	} else {
		if len(primes) < 2 {
			return nil, ErrNprimesTooSmall
		}
		primes = append([]T(nil), primes...)
	}

	key := &PrivateKey[T]{
		pub:    *pub,
		d:      d,
		primes: primes,
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if err := key.Precompute(); err != nil {
		return nil, err
	}
	return key, nil
}

// Public returns a copy of the embedded public key, carrying no secret
// material.
func (k *PrivateKey[T]) Public() PublicKey[T] {
	return k.pub
}

// N returns the modulus.
func (k *PrivateKey[T]) N() T { return k.pub.n }

// E returns the public exponent.
func (k *PrivateKey[T]) E() T { return k.pub.e }

// D returns the private exponent.
func (k *PrivateKey[T]) D() T { return k.d }

// Primes returns the prime factors of the modulus. The slice is shared
// with the key; callers must not mutate it.
func (k *PrivateKey[T]) Primes() []T { return k.primes }

// Size returns the modulus length in bytes.
func (k *PrivateKey[T]) Size() int { return k.pub.Size() }

// Precomputed returns the CRT values, or nil when the key is in the
// initial state.
func (k *PrivateKey[T]) Precomputed() *PrecomputedValues[T] {
	return k.precomputed
}

// CRTCoefficient returns q⁻¹ mod p when precomputed values exist.
func (k *PrivateKey[T]) CRTCoefficient() (T, bool) {
	if k.precomputed == nil {
		var zero T
		return zero, false
	}
	return k.precomputed.QInv, true
}

// Validate performs basic sanity checks on the key. It recomputes the
// prime product and the exponent congruences rather than trusting the
// stored fields.
func (k *PrivateKey[T]) Validate() error {
	if err := checkPublic(&k.pub); err != nil {
		return err
	}

	one := k.d.SetUint64(1)

	// Check that Πprimes == n.
	m := one
	for _, prime := range k.primes {
		// Any prime <= 1 would divide by zero below.
		if prime.Cmp(one) <= 0 {
			return ErrInvalidPrime
		}
		m = m.Mul(prime)
	}
	if m.Cmp(k.pub.n) != 0 {
		return ErrInvalidModulus
	}

	// Check that de ≡ 1 mod (p-1) for each prime. This implies e is
	// coprime to lcm(p-1, q-1, ...) and therefore that a^de ≡ a mod n
	// for all a coprime to n, as required. The product d·e is reduced
	// per prime to stay inside the backend width.
	for _, prime := range k.primes {
		pm1 := prime.WrappingSub(one)
		congruence := modmath.Mul(k.d, k.pub.e, pm1)
		if congruence.Cmp(one.Mod(pm1)) != 0 {
			return ErrInvalidExponent
		}
	}
	return nil
}

// Precompute fills in the CRT acceleration values. It is idempotent: a
// second call on an already precomputed key is a no-op.
func (k *PrivateKey[T]) Precompute() error {
	if k.precomputed != nil {
		return nil
	}
	one := k.d.SetUint64(1)
	p, q := k.primes[0], k.primes[1]

	pre := &PrecomputedValues[T]{
		Dp: k.d.Mod(p.WrappingSub(one)),
		Dq: k.d.Mod(q.WrappingSub(one)),
	}
	qinv, ok := modInverse(q, p)
	if !ok {
		return ErrInvalidCoefficient
	}
	pre.QInv = qinv

	// Third and subsequent primes: R is the running product of all
	// preceding primes, Coeff its inverse mod the prime.
	r := p.Mul(q)
	for _, prime := range k.primes[2:] {
		coeff, ok := modInverse(r, prime)
		if !ok {
			return ErrInvalidCoefficient
		}
		pre.CRTValues = append(pre.CRTValues, CRTValue[T]{
			Exp:   k.d.Mod(prime.WrappingSub(one)),
			Coeff: coeff,
			R:     r,
		})
		r = r.Mul(prime)
	}

	k.precomputed = pre
	log.Debug("RSA private key precomputed CRT values")
	return nil
}

// ClearPrecomputed wipes and drops the CRT acceleration values,
// returning the key to its initial state.
func (k *PrivateKey[T]) ClearPrecomputed() {
	if k.precomputed == nil {
		return
	}
	k.precomputed.wipe()
	k.precomputed = nil
}

// Wipe overwrites all secret scalar fields with zeros. The key must
// not be used afterwards. The public components are left intact.
func (k *PrivateKey[T]) Wipe() {
	k.d = k.d.Wipe()
	for i := range k.primes {
		k.primes[i] = k.primes[i].Wipe()
	}
	k.primes = nil
	k.ClearPrecomputed()
	log.Debug("RSA private key material wiped")
}
