// Package primroot finds generators of the multiplicative group modulo a prime.
//
// g is a primitive root modulo p iff g^((p-1)/f) mod p != 1 for every distinct
// prime factor f of p-1. Factors come from trial division, and the search
// scans g = 2, 3, ... in order, so neither step is polynomial in the bit
// length of p. Finder.TrialBound caps the trial divisor so callers can give
// up on a p whose p-1 does not split into small factors and one large prime.
//
// That large cofactor is accepted by Miller-Rabin, so the order check
// inherits the oracle's 4^-k error bound for k rounds.
package primroot
