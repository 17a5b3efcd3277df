package cipher

import (
	"math/big"

	"github.com/golang/glog"

	"pkarith/internal/crypto"
	"pkarith/internal/domain"
	"pkarith/internal/primality"
	"pkarith/internal/rsa"
)

// Options tunes the cipher service.
type Options struct {
	CheckPrimes bool
}

// Service derives RSA keys and applies them to integers.
type Service struct {
	primes primality.Generator
	opts   Options
}

// New returns a Service drawing primes from primes.
func New(primes primality.Generator, opts Options) *Service {
	return &Service{primes: primes, opts: opts}
}

// Keys derives a key pair from caller-supplied primes.
func (s *Service) Keys(p, q, e *big.Int) (domain.RSAPublicKey, domain.RSAPrivateKey, error) {
	if s.opts.CheckPrimes {
		if err := rsa.CheckPrimes(s.primes, p, q); err != nil {
			return domain.RSAPublicKey{}, domain.RSAPrivateKey{}, err
		}
	}
	pub, priv, err := rsa.GenerateKeys(p, q, e)
	if err != nil {
		return domain.RSAPublicKey{}, domain.RSAPrivateKey{}, err
	}
	glog.V(1).Infof("cipher: derived keys for n=%s", crypto.Fingerprint(pub.N))
	return pub, priv, nil
}

// Generate draws fresh primes for a bits-bit modulus.
func (s *Service) Generate(bits int, e *big.Int) (domain.RSAPublicKey, domain.RSAPrivateKey, error) {
	return rsa.GenerateKeysFromBits(s.primes, bits, e)
}

// Encrypt applies pub to m.
func (s *Service) Encrypt(m *big.Int, pub domain.RSAPublicKey) (*big.Int, error) {
	return rsa.Encrypt(m, pub)
}

// Decrypt applies priv to c.
func (s *Service) Decrypt(c *big.Int, priv domain.RSAPrivateKey) (*big.Int, error) {
	return rsa.Decrypt(c, priv)
}
