// Package exchange runs complete Diffie–Hellman exchanges between two
// parties over generated or supplied parameters.
//
// The initiator is always local. The responder is either a second local key
// pair or a peer backed by github.com/monnand/dhkx. Both secrets are checked
// for equality before a session key is derived from them.
package exchange
