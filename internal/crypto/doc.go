// Package crypto holds the small symmetric helpers layered on top of the
// integer arithmetic.
//
// Contents
//
//   - Session-key derivation from a Diffie–Hellman secret (DeriveSessionKey)
//   - Short fingerprints of public integers for display/logging (Fingerprint)
//   - Hex encoding for printing session keys (Hex)
//
// # Notes
//
// Integers are serialised big-endian and left-padded to the byte width of
// the group modulus, so both sides of an exchange hash identical bytes.
package crypto
