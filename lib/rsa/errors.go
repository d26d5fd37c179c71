package rsa

import "github.com/samber/oops"

// Error kinds shared by the key model and the padding engines.
//
// ErrDecryption and ErrVerification are deliberately uninformative:
// unpadding and signature checks collapse every internal failure cause
// into one of these two, because telling a caller (and therefore an
// attacker) which structural check failed is itself a padding-oracle
// vulnerability. Size and capacity errors carry no secret-dependent
// information and are safe to report precisely.
var (
	ErrInvalidPaddingScheme   = oops.Errorf("invalid padding scheme")
	ErrDecryption             = oops.Errorf("decryption error")
	ErrVerification           = oops.Errorf("verification error")
	ErrMessageTooLong         = oops.Errorf("message too long for RSA key size")
	ErrInputNotHashed         = oops.Errorf("input must be hashed message")
	ErrNprimesTooSmall        = oops.Errorf("number of primes must be 2 or greater")
	ErrTooFewPrimes           = oops.Errorf("too few primes of given length to generate an RSA key")
	ErrInvalidPrime           = oops.Errorf("invalid prime value")
	ErrInvalidModulus         = oops.Errorf("invalid modulus")
	ErrInvalidExponent        = oops.Errorf("invalid exponent")
	ErrInvalidCoefficient     = oops.Errorf("invalid coefficient")
	ErrModulusTooLarge        = oops.Errorf("modulus too large")
	ErrPublicExponentTooSmall = oops.Errorf("public exponent too small")
	ErrPublicExponentTooLarge = oops.Errorf("public exponent too large")
	ErrLabelTooLong           = oops.Errorf("label too long")
	ErrInvalidPadLen          = oops.Errorf("invalid padding length")
	ErrOutputBufferTooSmall   = oops.Errorf("output buffer too small")
	ErrInternal               = oops.Errorf("internal error")
)
