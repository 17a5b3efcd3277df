package prime

import (
	"math/big"

	"pkarith/internal/primality"
)

// Service tests and generates probable primes with a shared generator.
type Service struct {
	gen primality.Generator
}

// New returns a Service backed by gen.
func New(gen primality.Generator) *Service {
	return &Service{gen: gen}
}

// Test reports whether n is a probable prime. rounds <= 0 uses the
// generator's configured rounds.
func (s *Service) Test(n *big.Int, rounds int) (bool, error) {
	if rounds <= 0 {
		return s.gen.Test(n)
	}
	g := s.gen
	g.Rounds = rounds
	return g.Test(n)
}

// Generate returns a bits-bit probable prime.
func (s *Service) Generate(bits int) (*big.Int, error) {
	return s.gen.Prime(bits)
}
