// Package dh implements finite-field Diffie–Hellman over a generated prime.
//
// # Flow
//
//  1. GenerateParameters draws a prime p of the requested size and the
//     smallest primitive root g modulo p.
//  2. Each party calls GenerateKeyPair: private x uniform in [2, p-2],
//     public g^x mod p.
//  3. Each party calls ComputeSharedSecret with the other's public value.
//     Both obtain g^(xy) mod p.
//
// ForeignPeer plays the second party with github.com/monnand/dhkx over the
// same (p, g), which checks this package against an independent
// implementation.
//
// # Errors
//
// ErrInvalidParameters is returned when p is too small to hold a private key
// or g does not generate the group. ErrInvalidPublicKey flags public values
// outside (1, p-1). Parameter generation can also fail with the errors of
// the primality and primroot packages.
package dh
