package domain

import (
	interfaces "pkarith/internal/domain/interfaces"
	types "pkarith/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint   = types.Fingerprint
	PeerKind      = types.PeerKind
	DHParameters  = types.DHParameters
	DHKeyPair     = types.DHKeyPair
	RSAPublicKey  = types.RSAPublicKey
	RSAPrivateKey = types.RSAPrivateKey
	Exchange      = types.Exchange
)

// Peer kinds accepted by ExchangeService.Run.
const (
	PeerLocal = types.PeerLocal
	PeerDHKX  = types.PeerDHKX
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PrimeService    = interfaces.PrimeService
	ExchangeService = interfaces.ExchangeService
	CipherService   = interfaces.CipherService
)
