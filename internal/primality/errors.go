package primality

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBitLength is returned for prime sizes below 2 bits.
	ErrInvalidBitLength = errors.New("prime bit length must be at least 2")

	// ErrPrimeGenerationTimeout matches every *GenerationTimeoutError.
	ErrPrimeGenerationTimeout = errors.New("prime generation timed out")
)

// GenerationTimeoutError reports that no probable prime turned up within
// the attempt budget.
type GenerationTimeoutError struct {
	Bits     int
	Attempts int
}

func (e *GenerationTimeoutError) Error() string {
	return fmt.Sprintf("no %d-bit prime found in %d attempts", e.Bits, e.Attempts)
}

func (e *GenerationTimeoutError) Is(target error) bool {
	return target == ErrPrimeGenerationTimeout
}
