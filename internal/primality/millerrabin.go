package primality

import (
	"crypto/rand"
	"io"
	"math/big"

	"pkarith/internal/modarith"
)

const (
	// DefaultRounds is the witness count used when none is configured.
	DefaultRounds = 20

	// WitnessCap bounds the magnitude of Miller–Rabin witnesses.
	WitnessCap = 1 << 20
)

var (
	one       = big.NewInt(1)
	two       = big.NewInt(2)
	three     = big.NewInt(3)
	witnessHi = big.NewInt(WitnessCap)
)

// IsProbablePrime reports whether n passes k rounds of Miller–Rabin.
//
// A k below 1 runs a single round. The only error is a failing random source.
func IsProbablePrime(random io.Reader, n *big.Int, k int) (bool, error) {
	if n.Cmp(one) <= 0 {
		return false, nil
	}
	if n.Cmp(three) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}
	if k < 1 {
		k = 1
	}

	// n-1 = d·2^s with d odd
	nMinus1 := new(big.Int).Sub(n, one)
	s := nMinus1.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinus1, s)

	hi := new(big.Int).Sub(n, two)
	if hi.Cmp(witnessHi) > 0 {
		hi.Set(witnessHi)
	}
	// a = 2 + [0, hi-1) covers [2, hi]
	span := new(big.Int).Sub(hi, one)

	for i := 0; i < k; i++ {
		a, err := rand.Int(random, span)
		if err != nil {
			return false, err
		}
		a.Add(a, two)

		if !witnessPasses(a, d, s, n, nMinus1) {
			return false, nil
		}
	}
	return true, nil
}

// witnessPasses runs one Miller–Rabin round for base a.
func witnessPasses(a, d *big.Int, s uint, n, nMinus1 *big.Int) bool {
	x := modarith.ModExp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for r := uint(1); r < s; r++ {
		x = modarith.ModExp(x, two, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}
