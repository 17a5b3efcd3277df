package modarith

import "math/big"

var one = big.NewInt(1)

// ModExp returns base^exponent mod modulus.
//
// The base is reduced into [0, modulus) first and a modulus of 1 yields 0.
// It panics if exponent is negative or modulus is not positive.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("modarith: non-positive modulus")
	}
	if exponent.Sign() < 0 {
		panic("modarith: negative exponent")
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result
}
