package dh

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/golang/glog"

	"pkarith/internal/domain"
	"pkarith/internal/primality"
	"pkarith/internal/primroot"
)

const (
	// DefaultBits is the prime size used by the CLI when none is given.
	DefaultBits = 256

	// DefaultTrialBound caps trial division of p-1 during parameter
	// generation; primes beyond it are discarded and redrawn.
	DefaultTrialBound = 1 << 22

	// DefaultMaxAttempts bounds how many primes are discarded that way.
	DefaultMaxAttempts = 64
)

// Parameters is the public (p, g) pair.
type Parameters = domain.DHParameters

// Generator produces Diffie–Hellman parameters.
type Generator struct {
	Primes primality.Generator
	Roots  primroot.Finder

	// MaxAttempts bounds how many primes may be discarded because p-1 could
	// not be factored within Roots.TrialBound.
	MaxAttempts int
}

// GenerateParameters returns (p, g) with p a bits-bit probable prime, using
// DefaultTrialBound and DefaultMaxAttempts.
func GenerateParameters(random io.Reader, bits int) (Parameters, error) {
	primes := primality.Generator{Rand: random}
	g := Generator{
		Primes: primes,
		Roots:  primroot.Finder{Primes: &primes, TrialBound: DefaultTrialBound},
	}
	return g.Parameters(bits)
}

// Parameters draws p and finds its smallest primitive root g.
func (gen Generator) Parameters(bits int) (Parameters, error) {
	limit := gen.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}

	for attempt := 1; attempt <= limit; attempt++ {
		p, err := gen.Primes.Prime(bits)
		if err != nil {
			return Parameters{}, fmt.Errorf("generate prime: %w", err)
		}
		g, err := gen.Roots.Find(p)
		if errors.Is(err, primroot.ErrFactorBoundExceeded) {
			glog.V(2).Infof("dh: discarding %d-bit prime, p-1 not factored (attempt %d)", bits, attempt)
			continue
		}
		if err != nil {
			return Parameters{}, fmt.Errorf("find primitive root: %w", err)
		}
		glog.V(1).Infof("dh: %d-bit parameters ready, g=%s", bits, g)
		return Parameters{P: p, G: g}, nil
	}
	return Parameters{}, fmt.Errorf("no factorable %d-bit prime in %d attempts: %w",
		bits, limit, primroot.ErrFactorBoundExceeded)
}

// VerifyParameters checks that p is a probable prime and g has order p-1.
func (gen Generator) VerifyParameters(params Parameters) error {
	p, g := params.P, params.G
	if p == nil || g == nil {
		return fmt.Errorf("%w: missing p or g", ErrInvalidParameters)
	}
	ok, err := gen.Primes.Test(p)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: p is not prime", ErrInvalidParameters)
	}
	if p.Cmp(two) == 0 {
		if g.Cmp(one) != 0 {
			return fmt.Errorf("%w: generator for p=2 must be 1", ErrInvalidParameters)
		}
		return nil
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return fmt.Errorf("%w: g outside (1, p)", ErrInvalidParameters)
	}
	factors, err := gen.Roots.Factor(new(big.Int).Sub(p, one))
	if err != nil {
		return fmt.Errorf("factor p-1: %w", err)
	}
	if !primroot.IsPrimitiveRoot(g, p, factors) {
		return fmt.Errorf("%w: g does not generate the group", ErrInvalidParameters)
	}
	return nil
}
