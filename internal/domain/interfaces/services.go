package interfaces

import (
	"math/big"

	domaintypes "pkarith/internal/domain/types"
)

// PrimeService tests and generates probable primes.
type PrimeService interface {
	Test(n *big.Int, rounds int) (bool, error)
	Generate(bits int) (*big.Int, error)
}

// ExchangeService generates Diffie-Hellman parameters and runs exchanges.
type ExchangeService interface {
	Parameters(bits int) (domaintypes.DHParameters, error)
	Verify(params domaintypes.DHParameters) error
	Run(
		params domaintypes.DHParameters,
		peer domaintypes.PeerKind,
	) (domaintypes.Exchange, error)
}

// CipherService derives textbook RSA keys and encrypts integers with them.
type CipherService interface {
	Keys(p, q, e *big.Int) (
		domaintypes.RSAPublicKey,
		domaintypes.RSAPrivateKey,
		error,
	)
	Generate(bits int, e *big.Int) (
		domaintypes.RSAPublicKey,
		domaintypes.RSAPrivateKey,
		error,
	)
	Encrypt(m *big.Int, pub domaintypes.RSAPublicKey) (*big.Int, error)
	Decrypt(c *big.Int, priv domaintypes.RSAPrivateKey) (*big.Int, error)
}
