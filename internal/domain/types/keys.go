package types

import "math/big"

// DHParameters are the public group parameters: a prime P and a generator G
// of the multiplicative group modulo P (G = 1 when P = 2).
type DHParameters struct {
	P *big.Int `json:"p"`
	G *big.Int `json:"g"`
}

// DHKeyPair is one party's key pair, Public = G^Private mod P.
type DHKeyPair struct {
	Private *big.Int `json:"private"`
	Public  *big.Int `json:"public"`
}

// RSAPublicKey is the encryption half (N, E).
type RSAPublicKey struct {
	N *big.Int `json:"n"`
	E *big.Int `json:"e"`
}

// RSAPrivateKey is the decryption half (N, D).
type RSAPrivateKey struct {
	N *big.Int `json:"n"`
	D *big.Int `json:"d"`
}
