package rsa

import (
	"math/big"

	"pkarith/internal/modarith"
)

// Encrypt returns m^e mod n for m in [0, n).
func Encrypt(m *big.Int, pub PublicKey) (*big.Int, error) {
	if err := checkKey(pub.N, pub.E); err != nil {
		return nil, err
	}
	if err := checkRange(m, pub.N); err != nil {
		return nil, err
	}
	return modarith.ModExp(m, pub.E, pub.N), nil
}

// Decrypt returns c^d mod n for c in [0, n).
func Decrypt(c *big.Int, priv PrivateKey) (*big.Int, error) {
	if err := checkKey(priv.N, priv.D); err != nil {
		return nil, err
	}
	if err := checkRange(c, priv.N); err != nil {
		return nil, err
	}
	return modarith.ModExp(c, priv.D, priv.N), nil
}

// checkKey rejects a missing modulus and a missing or negative exponent
// before they reach ModExp.
func checkKey(n, exp *big.Int) error {
	if n == nil || n.Sign() <= 0 {
		return &InvalidModulusError{N: n, Reason: "modulus must be positive"}
	}
	if exp == nil || exp.Sign() < 0 {
		return &InvalidExponentError{E: exp}
	}
	return nil
}

func checkRange(v, n *big.Int) error {
	if v == nil {
		return &OutOfRangeError{N: new(big.Int).Set(n)}
	}
	if v.Sign() < 0 || v.Cmp(n) >= 0 {
		return &OutOfRangeError{Value: new(big.Int).Set(v), N: new(big.Int).Set(n)}
	}
	return nil
}
