package modarith_test

import (
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"

	"pkarith/internal/modarith"
)

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return n
}

func TestModExp(t *testing.T) {
	tests := []struct {
		name                 string
		base, exp, mod, want string
	}{
		{name: "simple", base: "2", exp: "10", mod: "1000", want: "24"},
		{name: "modulus_one", base: "5", exp: "3", mod: "1", want: "0"},
		{name: "zero_exponent", base: "7", exp: "0", mod: "13", want: "1"},
		{name: "base_larger_than_modulus", base: "100", exp: "3", mod: "7", want: "1"},
		{name: "negative_base", base: "-2", exp: "3", mod: "7", want: "6"},
		{name: "rsa_encrypt", base: "65", exp: "17", mod: "3233", want: "2790"},
		{name: "rsa_decrypt", base: "2790", exp: "2753", mod: "3233", want: "65"},
		{name: "fermat", base: "3", exp: "1000000006", mod: "1000000007", want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := modarith.ModExp(bigInt(t, tt.base), bigInt(t, tt.exp), bigInt(t, tt.mod))
			if got.Cmp(bigInt(t, tt.want)) != 0 {
				t.Errorf("ModExp(%s, %s, %s) = %s, want %s", tt.base, tt.exp, tt.mod, got, tt.want)
			}
		})
	}
}

func TestModExp_MatchesMathBig(t *testing.T) {
	base := bigInt(t, "123456789012345678901234567890")
	exp := bigInt(t, "98765432109876543210")
	mod := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	got := modarith.ModExp(base, exp, mod)
	want := new(big.Int).Exp(base, exp, mod)
	if got.Cmp(want) != 0 {
		t.Fatalf("ModExp = %s, want %s", got, want)
	}
}

func TestModExp_MatchesSaferith(t *testing.T) {
	r := mrand.New(mrand.NewSource(6841))
	for _, bits := range []int{17, 64, 127, 256, 521, 1024} {
		for i := 0; i < 8; i++ {
			mod := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
			mod.SetBit(mod, bits-1, 1).SetBit(mod, 0, 1)
			base := new(big.Int).Rand(r, mod)
			exp := new(big.Int).Rand(r, mod)

			m := saferith.ModulusFromNat(new(saferith.Nat).SetBig(mod, bits))
			x := new(saferith.Nat).SetBig(base, bits)
			y := new(saferith.Nat).SetBig(exp, bits)
			want := new(saferith.Nat).Exp(x, y, m).Big()

			if got := modarith.ModExp(base, exp, mod); got.Cmp(want) != 0 {
				t.Fatalf("%d bits: ModExp(%s, %s, %s) = %s, want %s", bits, base, exp, mod, got, want)
			}
		}
	}
}

func TestModExp_DoesNotModifyArguments(t *testing.T) {
	base, exp, mod := big.NewInt(10), big.NewInt(5), big.NewInt(7)
	modarith.ModExp(base, exp, mod)
	if base.Int64() != 10 || exp.Int64() != 5 || mod.Int64() != 7 {
		t.Fatalf("arguments modified: %s %s %s", base, exp, mod)
	}
}

func TestModExp_NegativeExponentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative exponent")
		}
	}()
	modarith.ModExp(big.NewInt(2), big.NewInt(-1), big.NewInt(7))
}

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		a, b  int64
		wantG int64
	}{
		{240, 46, 2},
		{17, 3120, 1},
		{3120, 17, 1},
		{4, 8, 4},
		{7, 0, 7},
		{-7, 0, 7},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
	}

	for _, tt := range tests {
		a, b := big.NewInt(tt.a), big.NewInt(tt.b)
		g, x, y := modarith.ExtendedGCD(a, b)
		if g.Int64() != tt.wantG {
			t.Errorf("gcd(%d, %d) = %s, want %d", tt.a, tt.b, g, tt.wantG)
			continue
		}
		lhs := new(big.Int).Add(new(big.Int).Mul(a, x), new(big.Int).Mul(b, y))
		if lhs.Cmp(g) != 0 {
			t.Errorf("bezout(%d, %d): %d·%s + %d·%s = %s, want %s", tt.a, tt.b, tt.a, x, tt.b, y, lhs, g)
		}
	}
}

func TestModInverse(t *testing.T) {
	d, err := modarith.ModInverse(big.NewInt(17), big.NewInt(3120))
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	if d.Int64() != 2753 {
		t.Fatalf("ModInverse(17, 3120) = %s, want 2753", d)
	}

	// Negative input still lands in [0, m).
	d, err = modarith.ModInverse(big.NewInt(-3), big.NewInt(7))
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	if d.Int64() != 2 {
		t.Fatalf("ModInverse(-3, 7) = %s, want 2", d)
	}
}

func TestModInverse_NotCoprime(t *testing.T) {
	_, err := modarith.ModInverse(big.NewInt(4), big.NewInt(8))
	if !errors.Is(err, modarith.ErrNoInverse) {
		t.Fatalf("want ErrNoInverse, got %v", err)
	}
	var nie *modarith.NoInverseError
	if !errors.As(err, &nie) {
		t.Fatalf("want *NoInverseError, got %T", err)
	}
	if nie.GCD.Int64() != 4 {
		t.Fatalf("want gcd 4, got %s", nie.GCD)
	}
}
