// Package types defines the byte-oriented interfaces every padding
// scheme's key wrappers satisfy, so callers can hold a signer or
// decrypter without caring which scheme or integer backend is behind
// it.
package types

// Signer produces signatures over data or over a precomputed digest.
type Signer interface {
	// Sign hashes data with the scheme's digest and signs the result.
	Sign(data []byte) (sig []byte, err error)
	// SignHash signs a digest the caller already computed. The digest
	// length must match the scheme's hash.
	SignHash(h []byte) (sig []byte, err error)
}

// Verifier checks signatures over data or over a precomputed digest.
type Verifier interface {
	// Verify hashes data with the scheme's digest and checks sig
	// against it.
	Verify(data, sig []byte) error
	// VerifyHash checks sig against a digest the caller already
	// computed.
	VerifyHash(h, sig []byte) error
}

// Encrypter encrypts a message with a public key.
type Encrypter interface {
	Encrypt(data []byte) (enc []byte, err error)
}

// Decrypter decrypts a message with a private key.
type Decrypter interface {
	Decrypt(data []byte) (dec []byte, err error)
}
