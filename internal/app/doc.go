// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults and an optional ini file, then builds the
// prime, exchange and cipher services from it, exposing them via the Wire
// struct for commands to use.
package app
