package primroot

import (
	"math/big"

	"github.com/golang/glog"
)

// Factor returns the distinct prime factors of n in ascending order.
//
// Factors of 2 are extracted first, then odd trial divisors run up to the
// square root of the remaining cofactor; a leftover cofactor above 1 is the
// last factor. The cofactor is also handed to the primality oracle whenever it
// shrinks, which ends the division early once it is prime.
func (f Finder) Factor(n *big.Int) ([]*big.Int, error) {
	var factors []*big.Int
	if n.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	rest := new(big.Int).Set(n)
	if tz := rest.TrailingZeroBits(); tz > 0 {
		factors = append(factors, big.NewInt(2))
		rest.Rsh(rest, tz)
	}

	done, err := f.finalIfPrime(rest, &factors)
	if err != nil || done {
		return factors, err
	}

	var (
		div = new(big.Int)
		sq  = new(big.Int)
		q   = new(big.Int)
		r   = new(big.Int)
	)
	for i := uint64(3); ; i += 2 {
		div.SetUint64(i)
		if sq.Mul(div, div).Cmp(rest) > 0 {
			break
		}
		if f.TrialBound > 0 && i > f.TrialBound {
			glog.V(2).Infof("primroot: trial bound %d reached, cofactor has %d bits", f.TrialBound, rest.BitLen())
			return nil, ErrFactorBoundExceeded
		}

		q.QuoRem(rest, div, r)
		if r.Sign() != 0 {
			continue
		}
		factors = append(factors, new(big.Int).Set(div))
		for r.Sign() == 0 {
			rest.Set(q)
			q.QuoRem(rest, div, r)
		}
		done, err := f.finalIfPrime(rest, &factors)
		if err != nil || done {
			return factors, err
		}
	}

	if rest.Cmp(one) > 0 {
		factors = append(factors, rest)
	}
	return factors, nil
}

// finalIfPrime appends rest and reports true when it is 1 or a probable prime.
func (f Finder) finalIfPrime(rest *big.Int, factors *[]*big.Int) (bool, error) {
	if rest.Cmp(one) == 0 {
		return true, nil
	}
	ok, err := f.primes().Test(rest)
	if err != nil {
		return false, err
	}
	if ok {
		*factors = append(*factors, new(big.Int).Set(rest))
	}
	return ok, nil
}
