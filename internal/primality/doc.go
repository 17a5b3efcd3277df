// Package primality is the probabilistic primality oracle.
//
// IsProbablePrime runs Miller–Rabin with k random witnesses. Composites are
// misclassified with probability at most 4^-k; primes are never rejected.
// Witnesses are drawn from [2, min(n-2, WitnessCap)], so for large n the
// witness range is capped rather than covering the whole residue ring.
//
// Generator produces random probable primes of an exact bit length. It gives
// up after MaxAttempts candidates with a *GenerationTimeoutError instead of
// looping forever on a broken random source.
//
// Every function that samples takes its randomness as an io.Reader. Pass
// crypto/rand.Reader in production and a seeded source in tests.
package primality
