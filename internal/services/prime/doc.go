// Package prime exposes the primality oracle and prime generator to the CLI.
package prime
