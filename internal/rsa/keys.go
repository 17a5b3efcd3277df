package rsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/golang/glog"

	"pkarith/internal/domain"
	"pkarith/internal/modarith"
	"pkarith/internal/primality"
)

// DefaultExponent is the public exponent used when the caller picks none.
const DefaultExponent = 65537

// maxKeyAttempts bounds prime-pair redraws in GenerateKeysFromBits.
const maxKeyAttempts = 1000

var one = big.NewInt(1)

type (
	// PublicKey is the pair (n, e).
	PublicKey = domain.RSAPublicKey
	// PrivateKey is the pair (n, d).
	PrivateKey = domain.RSAPrivateKey
)

// GenerateKeys derives ((n, e), (n, d)) from distinct p, q > 1 and an
// exponent e coprime to (p-1)(q-1).
func GenerateKeys(p, q, e *big.Int) (PublicKey, PrivateKey, error) {
	switch {
	case p.Cmp(one) <= 0 || q.Cmp(one) <= 0:
		return PublicKey{}, PrivateKey{}, modulusError(p, q, "p and q must be greater than 1")
	case p.Cmp(q) == 0:
		return PublicKey{}, PrivateKey{}, modulusError(p, q, "p and q must differ")
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	g := modarith.GCD(e, phi)
	if e.Sign() <= 0 || g.Cmp(one) != 0 {
		return PublicKey{}, PrivateKey{}, &InvalidExponentError{
			E:   new(big.Int).Set(e),
			Phi: phi,
			GCD: g,
		}
	}
	d, err := modarith.ModInverse(e, phi)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}

	return PublicKey{N: n, E: new(big.Int).Set(e)},
		PrivateKey{N: new(big.Int).Set(n), D: d},
		nil
}

// CheckPrimes runs primes.Test on p and q and reports the first composite
// as an *InvalidModulusError.
func CheckPrimes(primes primality.Generator, p, q *big.Int) error {
	for _, c := range []struct {
		name string
		v    *big.Int
	}{{"p", p}, {"q", q}} {
		ok, err := primes.Test(c.v)
		if err != nil {
			return err
		}
		if !ok {
			return modulusError(p, q, c.name+" is not prime")
		}
	}
	return nil
}

// GenerateKeysFromBits draws two distinct primes of about bits/2 bits from gen and
// derives keys for exponent e, redrawing while e is not coprime to φ.
func GenerateKeysFromBits(gen primality.Generator, bits int, e *big.Int) (PublicKey, PrivateKey, error) {
	if bits < 8 {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("modulus of %d bits: %w", bits, primality.ErrInvalidBitLength)
	}
	for attempt := 1; attempt <= maxKeyAttempts; attempt++ {
		p, err := gen.Prime(bits / 2)
		if err != nil {
			return PublicKey{}, PrivateKey{}, err
		}
		q, err := gen.Prime(bits - bits/2)
		if err != nil {
			return PublicKey{}, PrivateKey{}, err
		}

		pub, priv, err := GenerateKeys(p, q, e)
		if errors.Is(err, ErrInvalidModulus) || (errors.Is(err, ErrInvalidExponent) && e.Sign() > 0) {
			glog.V(2).Infof("rsa: redrawing primes (attempt %d): %v", attempt, err)
			continue
		}
		if err != nil {
			return PublicKey{}, PrivateKey{}, err
		}
		glog.V(1).Infof("rsa: %d-bit modulus ready after %d attempts", pub.N.BitLen(), attempt)
		return pub, priv, nil
	}
	return PublicKey{}, PrivateKey{}, fmt.Errorf("no usable prime pair in %d attempts: %w",
		maxKeyAttempts, primality.ErrPrimeGenerationTimeout)
}

func modulusError(p, q *big.Int, reason string) *InvalidModulusError {
	return &InvalidModulusError{
		P:      new(big.Int).Set(p),
		Q:      new(big.Int).Set(q),
		Reason: reason,
	}
}
