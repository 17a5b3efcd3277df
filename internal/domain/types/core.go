package types

// Fingerprint is a short identifier for public values presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// PeerKind selects who plays the responder in a key exchange.
type PeerKind string

const (
	// PeerLocal runs the responder with this module's own key generation.
	PeerLocal PeerKind = "local"
	// PeerDHKX runs the responder with the dhkx library.
	PeerDHKX PeerKind = "dhkx"
)

// String returns the string form of the peer kind.
func (k PeerKind) String() string { return string(k) }
