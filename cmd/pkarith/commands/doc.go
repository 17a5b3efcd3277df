// Package commands defines the pkarith CLI and wires dependencies for subcommands.
//
// Commands
//
//   - prime gen|test        Generate or test probable primes
//   - dh params|verify      Generate or check (p, g) group parameters
//   - dh exchange           Run a full exchange against a local or dhkx peer
//   - rsa keygen            Derive textbook RSA keys from p, q, e or from a size
//   - rsa encrypt|decrypt   Apply a key to an integer
//   - config init           Print the default ini configuration
//
// # Implementation
//
// The root command loads the ini config (--config), applies flag overrides
// and builds the service graph before any subcommand runs. glog's flags
// (-v, --logtostderr, ...) are registered on the root command.
//
// Integers are accepted in any base math/big understands (0x, 0o, 0b
// prefixes).
package commands
