// Package rsa implements textbook ("raw") RSA over caller-supplied primes.
//
// GenerateKeys derives n = p·q, φ = (p-1)(q-1) and d = e⁻¹ mod φ. Encrypt
// and Decrypt are plain modular exponentiations on integers in [0, n); there
// is no padding, so this is not suitable for protecting real data.
//
// GenerateKeys does not test p and q for primality. CheckPrimes does, for
// callers that want it, and GenerateKeysFromBits draws the primes itself.
package rsa
