package crypto

import "encoding/hex"

// Hex returns lowercase hex without separators.
func Hex(b []byte) string { return hex.EncodeToString(b) }
