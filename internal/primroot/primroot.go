package primroot

import (
	"errors"
	"io"
	"math/big"

	"github.com/golang/glog"

	"pkarith/internal/modarith"
	"pkarith/internal/primality"
)

var (
	// ErrPrimitiveRootNotFound means the scan over [2, p) found no generator.
	// For a genuine prime p this is an internal invariant violation.
	ErrPrimitiveRootNotFound = errors.New("primitive root not found")

	// ErrFactorBoundExceeded is returned when p-1 has no factorization within
	// Finder.TrialBound.
	ErrFactorBoundExceeded = errors.New("trial division bound exceeded")

	// ErrInvalidModulus is returned for p < 2.
	ErrInvalidModulus = errors.New("modulus must be at least 2")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Finder locates primitive roots.
//
// Primes tests cofactors during factoring. TrialBound caps the largest
// trial divisor; zero means unbounded.
type Finder struct {
	Primes     *primality.Generator
	TrialBound uint64
}

// FindPrimitiveRoot returns the smallest primitive root of p using an
// unbounded finder.
func FindPrimitiveRoot(random io.Reader, p *big.Int) (*big.Int, error) {
	f := Finder{Primes: &primality.Generator{Rand: random}}
	return f.Find(p)
}

// Find returns the smallest primitive root of p, or 1 when p is 2.
func (f Finder) Find(p *big.Int) (*big.Int, error) {
	if p.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}
	if p.Cmp(two) == 0 {
		return big.NewInt(1), nil
	}

	phi := new(big.Int).Sub(p, one)
	factors, err := f.Factor(phi)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("primroot: p-1 has %d distinct prime factors", len(factors))

	for g := big.NewInt(2); g.Cmp(p) < 0; g.Add(g, one) {
		if IsPrimitiveRoot(g, p, factors) {
			return new(big.Int).Set(g), nil
		}
	}
	return nil, ErrPrimitiveRootNotFound
}

// IsPrimitiveRoot reports whether g^((p-1)/f) mod p != 1 for every f in
// factors, the distinct prime factors of p-1.
func IsPrimitiveRoot(g, p *big.Int, factors []*big.Int) bool {
	phi := new(big.Int).Sub(p, one)
	exp := new(big.Int)
	for _, f := range factors {
		exp.Quo(phi, f)
		if modarith.ModExp(g, exp, p).Cmp(one) == 0 {
			return false
		}
	}
	return true
}

func (f Finder) primes() *primality.Generator {
	if f.Primes == nil {
		return &primality.Generator{}
	}
	return f.Primes
}
