package exchange_test

import (
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"

	"pkarith/internal/dh"
	"pkarith/internal/domain"
	"pkarith/internal/primality"
	"pkarith/internal/primroot"
	"pkarith/internal/services/exchange"
)

func newService(seed int64) *exchange.Service {
	primes := primality.Generator{Rand: mrand.New(mrand.NewSource(seed))}
	gen := dh.Generator{
		Primes: primes,
		Roots:  primroot.Finder{Primes: &primes, TrialBound: dh.DefaultTrialBound},
	}
	return exchange.New(gen, rand.Reader)
}

func TestService_Run(t *testing.T) {
	svc := newService(21)
	params, err := svc.Parameters(64)
	if err != nil {
		t.Fatalf("Parameters: %v", err)
	}
	if err := svc.Verify(params); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	for _, peer := range []domain.PeerKind{domain.PeerLocal, domain.PeerDHKX, ""} {
		t.Run(string(peer), func(t *testing.T) {
			ex, err := svc.Run(params, peer)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if ex.InitiatorSecret.Cmp(ex.ResponderSecret) != 0 {
				t.Fatalf("secrets differ")
			}
			if len(ex.SessionKey) != exchange.SessionKeyBytes {
				t.Fatalf("session key length = %d", len(ex.SessionKey))
			}
			if len(ex.InitiatorFingerprint) != 20 || ex.InitiatorFingerprint == ex.ResponderFingerprint {
				t.Fatalf("fingerprints %q / %q", ex.InitiatorFingerprint, ex.ResponderFingerprint)
			}
			if peer == "" && ex.Peer != domain.PeerLocal {
				t.Fatalf("peer = %q, want local", ex.Peer)
			}
		})
	}
}

func TestService_RunSmallGroup(t *testing.T) {
	svc := newService(1)
	params := domain.DHParameters{P: big.NewInt(23), G: big.NewInt(5)}
	for i := 0; i < 50; i++ {
		ex, err := svc.Run(params, domain.PeerLocal)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		for _, pub := range []*big.Int{ex.InitiatorPublic, ex.ResponderPublic} {
			if err := dh.ValidatePublicKey(pub, params); err != nil {
				t.Fatalf("public %s: %v", pub, err)
			}
		}
	}
}

func TestService_RunErrors(t *testing.T) {
	svc := newService(2)
	params := domain.DHParameters{P: big.NewInt(23), G: big.NewInt(5)}

	if _, err := svc.Run(params, domain.PeerKind("carrier-pigeon")); !errors.Is(err, exchange.ErrUnknownPeer) {
		t.Fatalf("want ErrUnknownPeer, got %v", err)
	}
	tiny := domain.DHParameters{P: big.NewInt(3), G: big.NewInt(2)}
	if _, err := svc.Run(tiny, domain.PeerLocal); !errors.Is(err, dh.ErrInvalidParameters) {
		t.Fatalf("want ErrInvalidParameters, got %v", err)
	}
	if err := svc.Verify(domain.DHParameters{P: big.NewInt(23), G: big.NewInt(2)}); !errors.Is(err, dh.ErrInvalidParameters) {
		t.Fatalf("want ErrInvalidParameters, got %v", err)
	}
}
