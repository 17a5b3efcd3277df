package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Fingerprint returns a short hex fingerprint of a public integer.
//
// It hashes the minimal big-endian encoding with SHA-256 and truncates to
// 10 bytes (20 hex chars).
func Fingerprint(pub *big.Int) string {
	sum := sha256.Sum256(pub.Bytes())
	return hex.EncodeToString(sum[:10])
}
