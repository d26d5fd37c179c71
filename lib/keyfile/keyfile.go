// Package keyfile loads and stores RSA keys as YAML documents with
// lowercase hex fields. The format is deliberately simple; it is for
// this tool's own keys, not an interchange format like PKCS#8.
package keyfile

import (
	"os"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/go-i2p/gorsa/lib/rsa"
	"github.com/go-i2p/gorsa/lib/uintn"
)

var log = logger.GetGoI2PLogger()

type publicKeyYAML struct {
	N string `yaml:"n"`
	E string `yaml:"e"`
}

type privateKeyYAML struct {
	N      string   `yaml:"n"`
	E      string   `yaml:"e"`
	D      string   `yaml:"d"`
	Primes []string `yaml:"primes,omitempty"`
}

// LoadPublic reads a public key from a YAML file. The key is validated
// on construction.
func LoadPublic(path string) (*rsa.PublicKey[uintn.Big], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Errorf("reading public key file: %w", err)
	}
	var doc publicKeyYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, oops.Errorf("parsing public key file %s: %w", path, err)
	}
	n, ok := uintn.NewBigFromHex(doc.N)
	if !ok {
		return nil, oops.Errorf("public key file %s: malformed modulus", path)
	}
	e, ok := uintn.NewBigFromHex(doc.E)
	if !ok {
		return nil, oops.Errorf("public key file %s: malformed exponent", path)
	}
	return rsa.NewPublicKey(n, e)
}

// LoadPrivate reads a private key from a YAML file. When the primes
// field is absent they are recovered from (n, e, d). The key is
// validated and precomputed before it is returned.
func LoadPrivate(path string) (*rsa.PrivateKey[uintn.Big], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Errorf("reading private key file: %w", err)
	}
	var doc privateKeyYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, oops.Errorf("parsing private key file %s: %w", path, err)
	}
	n, ok := uintn.NewBigFromHex(doc.N)
	if !ok {
		return nil, oops.Errorf("private key file %s: malformed modulus", path)
	}
	e, ok := uintn.NewBigFromHex(doc.E)
	if !ok {
		return nil, oops.Errorf("private key file %s: malformed exponent", path)
	}
	d, ok := uintn.NewBigFromHex(doc.D)
	if !ok {
		return nil, oops.Errorf("private key file %s: malformed private exponent", path)
	}
	var primes []uintn.Big
	for _, ph := range doc.Primes {
		p, ok := uintn.NewBigFromHex(ph)
		if !ok {
			return nil, oops.Errorf("private key file %s: malformed prime", path)
		}
		primes = append(primes, p)
	}
	if len(doc.Primes) == 0 {
		log.Debug("private key file has no primes, recovering from (n, e, d)")
	}
	return rsa.FromComponents(n, e, d, primes)
}

// SavePublic writes a public key as YAML, world readable.
func SavePublic(path string, pub *rsa.PublicKey[uintn.Big]) error {
	doc := publicKeyYAML{
		N: pub.N().Int().Text(16),
		E: pub.E().Int().Text(16),
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return oops.Errorf("encoding public key: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return oops.Errorf("writing public key file: %w", err)
	}
	return nil
}

// SavePrivate writes a private key as YAML with mode 0600.
func SavePrivate(path string, priv *rsa.PrivateKey[uintn.Big]) error {
	doc := privateKeyYAML{
		N: priv.N().Int().Text(16),
		E: priv.E().Int().Text(16),
		D: priv.D().Int().Text(16),
	}
	for _, p := range priv.Primes() {
		doc.Primes = append(doc.Primes, p.Int().Text(16))
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return oops.Errorf("encoding private key: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return oops.Errorf("writing private key file: %w", err)
	}
	return nil
}
