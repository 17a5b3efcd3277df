package exchange

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/golang/glog"

	"pkarith/internal/crypto"
	"pkarith/internal/dh"
	"pkarith/internal/domain"
	"pkarith/internal/util/memzero"
)

const (
	// SessionKeyBytes is the length of derived session keys.
	SessionKeyBytes = 32

	// keyAttempts bounds redraws of local key pairs whose public value is 1
	// or p-1.
	keyAttempts = 16
)

var (
	// ErrSecretMismatch means the two sides derived different secrets.
	ErrSecretMismatch = errors.New("shared secrets differ")
	// ErrUnknownPeer is returned by Run for a PeerKind it cannot build.
	ErrUnknownPeer = errors.New("unknown peer kind")
)

// Service generates parameters and runs exchanges.
type Service struct {
	gen    dh.Generator
	random io.Reader
}

// New returns a Service that generates parameters with gen and draws keys from random.
func New(gen dh.Generator, random io.Reader) *Service {
	return &Service{gen: gen, random: random}
}

// Parameters returns a fresh bits-bit (p, g).
func (s *Service) Parameters(bits int) (domain.DHParameters, error) {
	return s.gen.Parameters(bits)
}

// Verify checks that p is prime and g a primitive root modulo p.
func (s *Service) Verify(params domain.DHParameters) error {
	return s.gen.VerifyParameters(params)
}

// responder is the other side of an exchange.
type responder interface {
	PublicKey() *big.Int
	SharedSecret(theirPublic *big.Int) (*big.Int, error)
}

type localResponder struct {
	kp dh.KeyPair
	p  *big.Int
}

func (l localResponder) PublicKey() *big.Int { return l.kp.Public }

func (l localResponder) SharedSecret(theirPublic *big.Int) (*big.Int, error) {
	return dh.ComputeSharedSecret(theirPublic, l.kp.Private, l.p), nil
}

func (s *Service) responder(params domain.DHParameters, peer domain.PeerKind) (responder, error) {
	switch peer {
	case domain.PeerLocal, "":
		kp, err := s.keyPair(params)
		if err != nil {
			return nil, err
		}
		return localResponder{kp: kp, p: params.P}, nil
	case domain.PeerDHKX:
		return dh.NewForeignPeer(s.random, params)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeer, peer)
	}
}

// keyPair draws local keys whose public value passes ValidatePublicKey.
func (s *Service) keyPair(params domain.DHParameters) (dh.KeyPair, error) {
	var err error
	for i := 0; i < keyAttempts; i++ {
		var kp dh.KeyPair
		kp, err = dh.GenerateKeyPair(s.random, params)
		if err != nil {
			return dh.KeyPair{}, err
		}
		if err = dh.ValidatePublicKey(kp.Public, params); err == nil {
			return kp, nil
		}
		memzero.ZeroInt(kp.Private)
	}
	return dh.KeyPair{}, err
}

// Run performs one exchange and returns its transcript.
func (s *Service) Run(params domain.DHParameters, peer domain.PeerKind) (domain.Exchange, error) {
	initiator, err := s.keyPair(params)
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("initiator keys: %w", err)
	}
	defer memzero.ZeroInt(initiator.Private)

	resp, err := s.responder(params, peer)
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("responder keys: %w", err)
	}
	if lr, ok := resp.(localResponder); ok {
		defer memzero.ZeroInt(lr.kp.Private)
	}

	respPub := resp.PublicKey()
	if err := dh.ValidatePublicKey(respPub, params); err != nil {
		return domain.Exchange{}, fmt.Errorf("responder public key: %w", err)
	}

	ours := dh.ComputeSharedSecret(respPub, initiator.Private, params.P)
	theirs, err := resp.SharedSecret(initiator.Public)
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("responder secret: %w", err)
	}
	if ours.Cmp(theirs) != 0 {
		return domain.Exchange{}, ErrSecretMismatch
	}

	key, err := crypto.DeriveSessionKey(ours, params.P, nil, SessionKeyBytes)
	if err != nil {
		return domain.Exchange{}, fmt.Errorf("session key: %w", err)
	}

	ex := domain.Exchange{
		Params:               params,
		Peer:                 peer,
		InitiatorPublic:      initiator.Public,
		ResponderPublic:      respPub,
		InitiatorSecret:      ours,
		ResponderSecret:      theirs,
		SessionKey:           key,
		InitiatorFingerprint: domain.Fingerprint(crypto.Fingerprint(initiator.Public)),
		ResponderFingerprint: domain.Fingerprint(crypto.Fingerprint(respPub)),
	}
	if ex.Peer == "" {
		ex.Peer = domain.PeerLocal
	}
	glog.V(1).Infof("exchange: %s <-> %s (%s) agreed", ex.InitiatorFingerprint, ex.ResponderFingerprint, ex.Peer)
	return ex, nil
}
