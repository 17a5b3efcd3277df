package crypto

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"pkarith/internal/util/memzero"
)

// SessionInfo is the default HKDF info label for exchange session keys.
const SessionInfo = "pkarith-dh-session"

// ErrInvalidSecret is returned for secrets outside [0, p).
var ErrInvalidSecret = errors.New("secret outside group")

// DeriveSessionKey expands a shared secret in Z_p into n key bytes.
//
// The secret is encoded at the width of p and fed to HKDF-SHA256 with p's
// encoding as salt.
func DeriveSessionKey(secret, p *big.Int, info []byte, n int) ([]byte, error) {
	if secret.Sign() < 0 || p.Sign() <= 0 || secret.Cmp(p) >= 0 {
		return nil, ErrInvalidSecret
	}
	width := (p.BitLen() + 7) / 8
	ikm := secret.FillBytes(make([]byte, width))
	defer memzero.Zero(ikm)

	if info == nil {
		info = []byte(SessionInfo)
	}
	r := hkdf.New(sha256.New, ikm, p.Bytes(), info)
	key := make([]byte, n)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}
