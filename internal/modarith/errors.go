package modarith

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoInverse matches every *NoInverseError.
var ErrNoInverse = errors.New("no modular inverse")

// NoInverseError reports that a has no inverse modulo M.
type NoInverseError struct {
	A, M *big.Int
	GCD  *big.Int
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("no inverse of %s modulo %s: gcd = %s", e.A, e.M, e.GCD)
}

func (e *NoInverseError) Is(target error) bool { return target == ErrNoInverse }
