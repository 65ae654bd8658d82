package decimal

import (
	"math"
	"math/big"
	"testing"
)

func TestRate_ZeroValue(t *testing.T) {
	got := Rate{}
	want := RateZero()
	if got != want {
		t.Errorf("Rate{} = %q, want %q", got, want)
	}
}

func TestRateFromPercent_RoundTrip(t *testing.T) {
	for p := uint64(0); p <= 100; p++ {
		got, err := RateFromPercent(p).Percent64()
		if err != nil {
			t.Errorf("RateFromPercent(%v).Percent64() failed: %v", p, err)
			continue
		}
		if got != p {
			t.Errorf("RateFromPercent(%v).Percent64() = %v, want %v", p, got, p)
		}
	}
}

func TestRateFromBps_RoundTrip(t *testing.T) {
	for _, b := range []uint64{0, 1, 30, 10_000, math.MaxUint16} {
		got, err := RateFromBps(b).Bps64()
		if err != nil {
			t.Errorf("RateFromBps(%v).Bps64() failed: %v", b, err)
			continue
		}
		if got != b {
			t.Errorf("RateFromBps(%v).Bps64() = %v, want %v", b, got, b)
		}
	}
}

func TestRateFromScaled(t *testing.T) {
	raw := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	r, err := RateFromScaled(raw)
	if err != nil {
		t.Fatalf("RateFromScaled(%v) failed: %v", raw, err)
	}
	if r != RateMax() {
		t.Errorf("RateFromScaled(%v) = %q, want %q", raw, r, RateMax())
	}

	if _, err = RateFromScaled(new(big.Int).Lsh(big.NewInt(1), 128)); !ErrMathOverflow.Has(err) {
		t.Errorf("RateFromScaled(2^128) = %v, want math overflow", err)
	}
	if _, err = RateFromScaled(big.NewInt(-1)); !ErrMathOverflow.Has(err) {
		t.Errorf("RateFromScaled(-1) = %v, want math overflow", err)
	}
}

func TestRate_Scaled(t *testing.T) {
	r := RateFromScaled64(42)
	if got := r.Scaled(); got.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("%q.Scaled() = %v, want 42", r, got)
	}
	n, err := r.Scaled64()
	if err != nil {
		t.Fatalf("%q.Scaled64() failed: %v", r, err)
	}
	if n != 42 {
		t.Errorf("%q.Scaled64() = %v, want 42", r, n)
	}
	if _, err = RateMax().Scaled64(); !ErrMathOverflow.Has(err) {
		t.Errorf("RateMax().Scaled64() = %v, want math overflow", err)
	}
}

func TestRate_AddSub(t *testing.T) {
	sum, err := RateFromPercent(30).Add(RateFromPercent(70))
	if err != nil {
		t.Fatalf("30%% + 70%% failed: %v", err)
	}
	if sum != RateOne() {
		t.Errorf("30%% + 70%% = %q, want %q", sum, RateOne())
	}

	diff, err := sum.Sub(RateFromPercent(70))
	if err != nil {
		t.Fatalf("%q - 70%% failed: %v", sum, err)
	}
	if diff != RateFromPercent(30) {
		t.Errorf("%q - 70%% = %q, want %q", sum, diff, RateFromPercent(30))
	}

	if _, err = RateMax().Add(RateFromScaled64(1)); !ErrMathOverflow.Has(err) {
		t.Errorf("RateMax().Add(ulp) = %v, want math overflow", err)
	}
	if _, err = RateZero().Sub(RateFromScaled64(1)); !ErrMathOverflow.Has(err) {
		t.Errorf("RateZero().Sub(ulp) = %v, want math overflow", err)
	}
}

func TestRate_MulQuo(t *testing.T) {
	got, err := RateFromUint64(5).Mul(RateFromUint64(3))
	if err != nil {
		t.Fatalf("5.Mul(3) failed: %v", err)
	}
	if got != RateFromUint64(15) {
		t.Errorf("5.Mul(3) = %q, want %q", got, RateFromUint64(15))
	}

	got, err = RateFromUint64(15).Quo(RateFromUint64(3))
	if err != nil {
		t.Fatalf("15.Quo(3) failed: %v", err)
	}
	if got != RateFromUint64(5) {
		t.Errorf("15.Quo(3) = %q, want %q", got, RateFromUint64(5))
	}

	// Identity and absorption hold at the top of the 128-bit range
	// because of the wide intermediate.
	got, err = RateMax().Mul(RateOne())
	if err != nil {
		t.Fatalf("RateMax().Mul(RateOne()) failed: %v", err)
	}
	if got != RateMax() {
		t.Errorf("RateMax().Mul(RateOne()) = %q, want %q", got, RateMax())
	}

	if _, err = RateOne().Quo(RateZero()); !ErrMathOverflow.Has(err) {
		t.Errorf("RateOne().Quo(0) = %v, want math overflow", err)
	}
	if _, err = RateMax().Mul(RateFromUint64(2)); !ErrMathOverflow.Has(err) {
		t.Errorf("RateMax().Mul(2) = %v, want math overflow", err)
	}
}

func TestRate_Mul64Quo64(t *testing.T) {
	r, err := RateFromPercent(10).Mul64(10)
	if err != nil {
		t.Fatalf("10%%.Mul64(10) failed: %v", err)
	}
	if r != RateOne() {
		t.Errorf("10%%.Mul64(10) = %q, want %q", r, RateOne())
	}

	r, err = RateOne().Quo64(4)
	if err != nil {
		t.Fatalf("RateOne().Quo64(4) failed: %v", err)
	}
	if r != RateFromPercent(25) {
		t.Errorf("RateOne().Quo64(4) = %q, want %q", r, RateFromPercent(25))
	}

	if _, err = RateOne().Quo64(0); !ErrMathOverflow.Has(err) {
		t.Errorf("RateOne().Quo64(0) = %v, want math overflow", err)
	}
	if _, err = RateMax().Mul64(2); !ErrMathOverflow.Has(err) {
		t.Errorf("RateMax().Mul64(2) = %v, want math overflow", err)
	}
}

func TestRate_Round64(t *testing.T) {
	tests := []struct {
		raw  uint64
		want uint64
	}{
		{0, 0},
		{halfWad - 1, 0},
		{halfWad, 1},
		{wad, 1},
		{wad + halfWad, 2},
	}
	for _, tt := range tests {
		r := RateFromScaled64(tt.raw)
		got, err := r.Round64()
		if err != nil {
			t.Errorf("%q.Round64() failed: %v", r, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.Round64() = %v, want %v", r, got, tt.want)
		}
	}

	if _, err := RateMax().Round64(); !ErrMathOverflow.Has(err) {
		t.Errorf("RateMax().Round64() = %v, want math overflow", err)
	}
}

func TestRate_Cmp(t *testing.T) {
	tests := []struct {
		a, b Rate
		want int
	}{
		{RateZero(), RateZero(), 0},
		{RateZero(), RateOne(), -1},
		{RateOne(), RateZero(), 1},
		{RateFromPercent(100), RateOne(), 0},
		{RateMax(), RateOne(), 1},
	}
	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRate_String(t *testing.T) {
	tests := []struct {
		r    Rate
		want string
	}{
		{RateZero(), "0.000000000000000000"},
		{RateOne(), "1.000000000000000000"},
		{RateFromBps(50), "0.005000000000000000"},
		{RateMax(), "340282366920938463463.374607431768211455"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
