package dh

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"pkarith/internal/domain"
	"pkarith/internal/modarith"
)

var (
	// ErrInvalidParameters reports unusable (p, g).
	ErrInvalidParameters = errors.New("invalid dh parameters")

	// ErrInvalidPublicKey reports a public value outside (1, p-1).
	ErrInvalidPublicKey = errors.New("invalid dh public key")
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	five  = big.NewInt(5)
)

// KeyPair is one party's (private, public) pair.
type KeyPair = domain.DHKeyPair

// GenerateKeyPair draws a private key uniformly from [2, p-2] and returns it
// with the public value g^private mod p.
func GenerateKeyPair(random io.Reader, params Parameters) (KeyPair, error) {
	if params.P == nil || params.G == nil || params.P.Cmp(five) < 0 {
		return KeyPair{}, ErrInvalidParameters
	}
	// [2, p-2] has p-3 elements.
	span := new(big.Int).Sub(params.P, three)
	x, err := rand.Int(random, span)
	if err != nil {
		return KeyPair{}, err
	}
	x.Add(x, two)

	return KeyPair{
		Private: x,
		Public:  modarith.ModExp(params.G, x, params.P),
	}, nil
}

// ComputeSharedSecret returns theirPublic^myPrivate mod p.
func ComputeSharedSecret(theirPublic, myPrivate, p *big.Int) *big.Int {
	return modarith.ModExp(theirPublic, myPrivate, p)
}

// ValidatePublicKey rejects public values that are not in (1, p-1).
func ValidatePublicKey(pub *big.Int, params Parameters) error {
	if pub == nil || params.P == nil {
		return ErrInvalidPublicKey
	}
	pMinus1 := new(big.Int).Sub(params.P, one)
	if pub.Cmp(one) <= 0 || pub.Cmp(pMinus1) >= 0 {
		return ErrInvalidPublicKey
	}
	return nil
}
