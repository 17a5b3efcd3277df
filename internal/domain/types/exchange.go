package types

import "math/big"

// Exchange is the transcript of one two-party Diffie-Hellman run.
//
// Both secrets are kept so callers can show that the parties agree.
type Exchange struct {
	Params DHParameters `json:"params"`
	Peer   PeerKind     `json:"peer"`

	InitiatorPublic *big.Int `json:"initiator_public"`
	ResponderPublic *big.Int `json:"responder_public"`

	InitiatorSecret *big.Int `json:"initiator_secret"`
	ResponderSecret *big.Int `json:"responder_secret"`

	// SessionKey is derived from the shared secret with HKDF-SHA256.
	SessionKey []byte `json:"session_key"`

	InitiatorFingerprint Fingerprint `json:"initiator_fingerprint"`
	ResponderFingerprint Fingerprint `json:"responder_fingerprint"`
}
