package app

import (
	"crypto/rand"
	"io"

	"pkarith/internal/dh"
	"pkarith/internal/domain"
	"pkarith/internal/primality"
	"pkarith/internal/primroot"
	ciphersvc "pkarith/internal/services/cipher"
	exchangesvc "pkarith/internal/services/exchange"
	primesvc "pkarith/internal/services/prime"
)

// Wire bundles the services for the CLI.
type Wire struct {
	Config   Config
	Primes   domain.PrimeService
	Exchange domain.ExchangeService
	Cipher   domain.CipherService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var random io.Reader = rand.Reader
	if cfg.Rand != nil {
		random = cfg.Rand
	}

	// Shared prime generator
	primes := primality.Generator{
		Rand:        random,
		Rounds:      cfg.Primality.Rounds,
		MaxAttempts: cfg.Primality.MaxAttempts,
	}

	// Parameter generation
	gen := dh.Generator{
		Primes:      primes,
		Roots:       primroot.Finder{Primes: &primes, TrialBound: cfg.PrimRoot.TrialBound},
		MaxAttempts: cfg.DH.MaxAttempts,
	}

	return &Wire{
		Config:   cfg,
		Primes:   primesvc.New(primes),
		Exchange: exchangesvc.New(gen, random),
		Cipher:   ciphersvc.New(primes, ciphersvc.Options{CheckPrimes: cfg.RSA.CheckPrimes}),
	}, nil
}
