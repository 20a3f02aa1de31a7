package domain

import (
	"math/big"
	"testing"
)

func TestNewSpace(t *testing.T) {
	if _, err := NewSpace(0); err == nil {
		t.Error("expected error for non-positive bits")
	}
	sp, err := NewSpace(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.ByteLen != 1 {
		t.Errorf("ByteLen = %d, want 1", sp.ByteLen)
	}
}

func TestFromHexStringRoundTrip(t *testing.T) {
	sp, _ := NewSpace(8)
	id, err := sp.FromHexString("0xAB")
	if err != nil {
		t.Fatalf("FromHexString failed: %v", err)
	}
	if id.ToHexString(false) != "ab" {
		t.Errorf("got %s, want ab", id.ToHexString(false))
	}
}

func TestFromHexStringOutOfRange(t *testing.T) {
	sp, _ := NewSpace(3) // N = 8, valid ids in [0,7]
	if _, err := sp.FromHexString("0x08"); err == nil {
		t.Error("expected error for value >= 2^Bits")
	}
}

func TestFromBigIntWraps(t *testing.T) {
	sp, _ := NewSpace(3) // N = 8
	v, _ := new(big.Int).SetString("b", 16) // 11
	id := sp.FromBigInt(v)
	if got := id.ToBigInt().Int64(); got != 3 { // 11 mod 8
		t.Errorf("FromBigInt(11) = %d, want 3", got)
	}
}

func TestPowerOfTwo(t *testing.T) {
	sp, _ := NewSpace(3) // N = 8
	got := sp.PowerOfTwo(3).ToBigInt().Int64()
	if got != 0 { // 2^3 mod 8 == 0
		t.Errorf("PowerOfTwo(3) = %d, want 0", got)
	}
	got = sp.PowerOfTwo(1).ToBigInt().Int64()
	if got != 2 {
		t.Errorf("PowerOfTwo(1) = %d, want 2", got)
	}
}

// TestBetweenProperty checks that Between(k,a,b) and Between(k,b,a) are
// mutually exclusive when a != b and k not in {a,b}, and the a==b cases.
func TestBetweenProperty(t *testing.T) {
	sp, _ := NewSpace(3) // N = 8
	a := sp.FromUint64(2)
	b := sp.FromUint64(6)

	for k := uint64(0); k < 8; k++ {
		id := sp.FromUint64(k)
		if id.Equal(a) || id.Equal(b) {
			continue
		}
		fwd := id.Between(a, b, true)
		bwd := id.Between(b, a, true)
		if fwd == bwd {
			t.Errorf("k=%d: Between(a,b) and Between(b,a) should be mutually exclusive, got %v and %v", k, fwd, bwd)
		}
	}

	if !a.Between(a, a, true) {
		t.Error("Between(a,a,true) must be true")
	}
	if a.Between(a, a, false) {
		t.Error("Between(a,a,false) must be false")
	}
}

func TestBetweenLinearAndWrap(t *testing.T) {
	sp, _ := NewSpace(3)
	a := sp.FromUint64(2)
	b := sp.FromUint64(6)

	// linear arc [2,6): 2,3,4,5 included, 6 excluded
	for k := uint64(2); k < 6; k++ {
		if !sp.FromUint64(k).Between(a, b, true) {
			t.Errorf("expected %d to be between 2 and 6", k)
		}
	}
	if sp.FromUint64(6).Between(a, b, true) {
		t.Error("6 should not be in [2,6)")
	}
	if sp.FromUint64(1).Between(a, b, true) {
		t.Error("1 should not be in [2,6)")
	}

	// wrap arc [6,2): 6,7,0,1 included, 2 excluded
	for _, k := range []uint64{6, 7, 0, 1} {
		if !sp.FromUint64(k).Between(b, a, true) {
			t.Errorf("expected %d to be between 6 and 2 (wrap)", k)
		}
	}
	if sp.FromUint64(2).Between(b, a, true) {
		t.Error("2 should not be in [6,2) wrap arc")
	}
}

func TestAddModSubMod(t *testing.T) {
	sp, _ := NewSpace(3) // N = 8
	sum, err := sp.AddMod(sp.FromUint64(6), sp.FromUint64(5))
	if err != nil {
		t.Fatalf("AddMod error: %v", err)
	}
	if sum.ToBigInt().Int64() != 3 { // (6+5) mod 8 = 3
		t.Errorf("AddMod = %d, want 3", sum.ToBigInt().Int64())
	}

	diff, err := sp.SubMod(sp.FromUint64(2), sp.FromUint64(5))
	if err != nil {
		t.Fatalf("SubMod error: %v", err)
	}
	if diff.ToBigInt().Int64() != 5 { // (2-5) mod 8 = 5
		t.Errorf("SubMod = %d, want 5", diff.ToBigInt().Int64())
	}
}
