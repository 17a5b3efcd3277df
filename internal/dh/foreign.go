package dh

import (
	"io"
	"math/big"

	"github.com/monnand/dhkx"
)

// ForeignPeer is a party whose keys and secret come from the dhkx library
// rather than this package.
type ForeignPeer struct {
	group *dhkx.DHGroup
	key   *dhkx.DHKey
}

// NewForeignPeer generates a dhkx key over params. dhkx samples its private
// value from (0, p).
func NewForeignPeer(random io.Reader, params Parameters) (*ForeignPeer, error) {
	if params.P == nil || params.G == nil || params.P.Cmp(five) < 0 {
		return nil, ErrInvalidParameters
	}
	group := dhkx.CreateGroup(new(big.Int).Set(params.P), new(big.Int).Set(params.G))
	key, err := group.GeneratePrivateKey(random)
	if err != nil {
		return nil, err
	}
	return &ForeignPeer{group: group, key: key}, nil
}

// PublicKey returns the peer's public value g^x mod p.
func (f *ForeignPeer) PublicKey() *big.Int {
	return new(big.Int).SetBytes(f.key.Bytes())
}

// SharedSecret computes theirPublic^x mod p inside dhkx.
func (f *ForeignPeer) SharedSecret(theirPublic *big.Int) (*big.Int, error) {
	k, err := f.group.ComputeKey(dhkx.NewPublicKey(theirPublic.Bytes()), f.key)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(k.Bytes()), nil
}
