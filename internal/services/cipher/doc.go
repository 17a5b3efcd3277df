// Package cipher wraps textbook RSA key derivation and the integer
// encrypt/decrypt operations for the CLI.
//
// With CheckPrimes set, user-supplied p and q are run through the primality
// oracle before keys are derived.
package cipher
