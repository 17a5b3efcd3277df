package rsa

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidModulus matches every *InvalidModulusError.
	ErrInvalidModulus = errors.New("invalid rsa modulus")
	// ErrInvalidExponent matches every *InvalidExponentError.
	ErrInvalidExponent = errors.New("invalid rsa exponent")
	// ErrOutOfRange matches every *OutOfRangeError.
	ErrOutOfRange = errors.New("value out of range")
)

// InvalidModulusError reports unusable primes p and q, or an unusable
// modulus N on a key handed to Encrypt or Decrypt.
type InvalidModulusError struct {
	P, Q   *big.Int
	N      *big.Int
	Reason string
}

func (e *InvalidModulusError) Error() string {
	if e.P == nil && e.Q == nil {
		return fmt.Sprintf("invalid modulus %s: %s", e.N, e.Reason)
	}
	return fmt.Sprintf("invalid modulus (p=%s, q=%s): %s", e.P, e.Q, e.Reason)
}

func (e *InvalidModulusError) Is(target error) bool { return target == ErrInvalidModulus }

// InvalidExponentError reports an exponent that is not invertible modulo Phi.
// Phi and GCD are nil when the exponent was rejected on a bare key.
type InvalidExponentError struct {
	E, Phi *big.Int
	GCD    *big.Int
}

func (e *InvalidExponentError) Error() string {
	if e.Phi == nil {
		return fmt.Sprintf("exponent %s must be non-negative", e.E)
	}
	return fmt.Sprintf("exponent %s not coprime to phi(n)=%s: gcd = %s", e.E, e.Phi, e.GCD)
}

func (e *InvalidExponentError) Is(target error) bool { return target == ErrInvalidExponent }

// OutOfRangeError reports a message or ciphertext outside [0, N).
type OutOfRangeError struct {
	Value, N *big.Int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %s outside [0, %s)", e.Value, e.N)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }
