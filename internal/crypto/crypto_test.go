package crypto_test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"pkarith/internal/crypto"
)

func TestFingerprint(t *testing.T) {
	a := crypto.Fingerprint(big.NewInt(2790))
	if len(a) != 20 {
		t.Fatalf("fingerprint length = %d, want 20", len(a))
	}
	if a != crypto.Fingerprint(big.NewInt(2790)) {
		t.Fatal("fingerprint not deterministic")
	}
	if a == crypto.Fingerprint(big.NewInt(2791)) {
		t.Fatal("distinct inputs share a fingerprint")
	}
}

func TestDeriveSessionKey(t *testing.T) {
	p := big.NewInt(1000000007)
	secret := big.NewInt(123456)

	k1, err := crypto.DeriveSessionKey(secret, p, nil, 32)
	if err != nil {
		t.Fatalf("DeriveSessionKey: %v", err)
	}
	if len(k1) != 32 {
		t.Fatalf("key length = %d", len(k1))
	}
	k2, _ := crypto.DeriveSessionKey(new(big.Int).Set(secret), p, []byte(crypto.SessionInfo), 32)
	if !bytes.Equal(k1, k2) {
		t.Fatal("default info differs from SessionInfo")
	}
	k3, _ := crypto.DeriveSessionKey(secret, p, []byte("other"), 32)
	if bytes.Equal(k1, k3) {
		t.Fatal("info label ignored")
	}
	k4, _ := crypto.DeriveSessionKey(big.NewInt(123457), p, nil, 32)
	if bytes.Equal(k1, k4) {
		t.Fatal("secret ignored")
	}
	if secret.Int64() != 123456 {
		t.Fatal("secret modified")
	}
}

func TestDeriveSessionKey_OutOfGroup(t *testing.T) {
	p := big.NewInt(23)
	for _, s := range []int64{-1, 23, 100} {
		if _, err := crypto.DeriveSessionKey(big.NewInt(s), p, nil, 16); !errors.Is(err, crypto.ErrInvalidSecret) {
			t.Fatalf("secret %d: want ErrInvalidSecret, got %v", s, err)
		}
	}
}
