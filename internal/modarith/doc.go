// Package modarith implements the modular arithmetic every other package
// builds on.
//
// Contents
//
//   - Square-and-multiply modular exponentiation (ModExp)
//   - Extended Euclidean algorithm with Bézout coefficients (ExtendedGCD, GCD)
//   - Modular multiplicative inverse (ModInverse)
//
// # Errors
//
// ModInverse returns a *NoInverseError, matching ErrNoInverse, when a and m
// share a factor. The error carries the gcd that was computed.
//
// All functions allocate fresh results and never modify their arguments.
package modarith
