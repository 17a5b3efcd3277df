package memzero_test

import (
	"math/big"
	"testing"

	"pkarith/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d", i, v)
		}
	}
	memzero.Zero(nil)
}

func TestZeroInt(t *testing.T) {
	x, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	words := x.Bits()
	memzero.ZeroInt(x)
	if x.Sign() != 0 {
		t.Fatalf("x = %s, want 0", x)
	}
	for i, w := range words {
		if w != 0 {
			t.Fatalf("word %d not cleared", i)
		}
	}
	memzero.ZeroInt(nil)
}
