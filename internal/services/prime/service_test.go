package prime_test

import (
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"

	"pkarith/internal/primality"
	"pkarith/internal/services/prime"
)

func newService() *prime.Service {
	return prime.New(primality.Generator{Rand: mrand.New(mrand.NewSource(11)), Rounds: 10})
}

func TestService_Test(t *testing.T) {
	svc := newService()
	tests := []struct {
		n      int64
		rounds int
		want   bool
	}{
		{n: 97, want: true},
		{n: 561, want: false},
		{n: 1000000007, rounds: 40, want: true},
		{n: 1000000008, rounds: 1, want: false},
	}
	for _, tt := range tests {
		got, err := svc.Test(big.NewInt(tt.n), tt.rounds)
		if err != nil {
			t.Fatalf("Test(%d): %v", tt.n, err)
		}
		if got != tt.want {
			t.Fatalf("Test(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestService_Generate(t *testing.T) {
	svc := newService()
	p, err := svc.Generate(128)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.BitLen() != 128 || !p.ProbablyPrime(20) {
		t.Fatalf("got %s, want 128-bit prime", p)
	}
	if _, err := svc.Generate(1); !errors.Is(err, primality.ErrInvalidBitLength) {
		t.Fatalf("want ErrInvalidBitLength, got %v", err)
	}
}
