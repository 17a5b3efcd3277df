package primality

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/golang/glog"
)

// DefaultMaxAttempts bounds the candidates Generator draws before giving up.
const DefaultMaxAttempts = 100000

// Generator draws random probable primes of an exact bit length.
//
// Zero values fall back to crypto/rand.Reader, DefaultRounds and
// DefaultMaxAttempts, so a Generator{} is ready to use.
type Generator struct {
	Rand        io.Reader
	Rounds      int
	MaxAttempts int
}

// GeneratePrime returns a bits-bit probable prime drawn from random.
func GeneratePrime(random io.Reader, bits int) (*big.Int, error) {
	g := Generator{Rand: random}
	return g.Prime(bits)
}

// Prime returns a probable prime with exactly bits bits.
//
// Candidates are uniform bits-bit odd integers with the top bit set.
func (g Generator) Prime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBitLength
	}
	random := g.reader()
	limit := g.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}

	buf := make([]byte, (bits+7)/8)
	for attempt := 1; attempt <= limit; attempt++ {
		p, err := candidate(random, buf, bits)
		if err != nil {
			return nil, err
		}
		ok, err := IsProbablePrime(random, p, g.rounds())
		if err != nil {
			return nil, err
		}
		if ok {
			glog.V(1).Infof("primality: %d-bit prime found after %d candidates", bits, attempt)
			return p, nil
		}
		if glog.V(2) {
			glog.Infof("primality: candidate %d rejected", attempt)
		}
	}
	return nil, &GenerationTimeoutError{Bits: bits, Attempts: limit}
}

// Test runs IsProbablePrime with the generator's source and rounds.
func (g Generator) Test(n *big.Int) (bool, error) {
	return IsProbablePrime(g.reader(), n, g.rounds())
}

func (g Generator) reader() io.Reader {
	if g.Rand == nil {
		return rand.Reader
	}
	return g.Rand
}

func (g Generator) rounds() int {
	if g.Rounds <= 0 {
		return DefaultRounds
	}
	return g.Rounds
}

// candidate fills buf from random and shapes it into an odd bits-bit integer.
func candidate(random io.Reader, buf []byte, bits int) (*big.Int, error) {
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, err
	}
	// Clear the excess high bits of the first byte, then force the top bit.
	top := uint(bits % 8)
	if top == 0 {
		top = 8
	}
	buf[0] &= uint8(int(1<<top) - 1)
	buf[0] |= 1 << (top - 1)
	buf[len(buf)-1] |= 1
	return new(big.Int).SetBytes(buf), nil
}
