package routingtable

import (
	"testing"

	"ChordDHT/internal/domain"
)

func TestNewComputesFingerStarts(t *testing.T) {
	sp, _ := domain.NewSpace(3) // N = 8
	self := &domain.Node{ID: sp.FromUint64(1), Addr: "n1:1"}
	rt := New(self, sp)

	want := []int64{2, 3, 5} // start(i) = (1 + 2^(i-1)) mod 8 for i=1..3
	for i := 1; i <= rt.M(); i++ {
		got := rt.Start(i).ToBigInt().Int64()
		if got != want[i-1] {
			t.Errorf("Start(%d) = %d, want %d", i, got, want[i-1])
		}
	}
}

func TestInitSingleNode(t *testing.T) {
	sp, _ := domain.NewSpace(3)
	self := &domain.Node{ID: sp.FromUint64(0), Addr: "n0:1"}
	rt := New(self, sp)
	rt.InitSingleNode()

	if rt.Successor() != self {
		t.Error("expected successor to be self after InitSingleNode")
	}
	if rt.Predecessor() != self {
		t.Error("expected predecessor to be self after InitSingleNode")
	}
	for i := 1; i <= rt.M(); i++ {
		if rt.Finger(i) != self {
			t.Errorf("expected finger %d to be self", i)
		}
	}
}

func TestSetFingerPreservesStart(t *testing.T) {
	sp, _ := domain.NewSpace(3)
	self := &domain.Node{ID: sp.FromUint64(0), Addr: "n0:1"}
	other := &domain.Node{ID: sp.FromUint64(4), Addr: "n4:1"}
	rt := New(self, sp)

	originalStart := rt.Start(2)
	rt.SetFinger(2, other)

	if !rt.Start(2).Equal(originalStart) {
		t.Error("SetFinger must never change a finger's start identifier")
	}
	if rt.Finger(2) != other {
		t.Error("expected finger 2 to point at other after SetFinger")
	}
}

func TestSuccessorIsFingerOne(t *testing.T) {
	sp, _ := domain.NewSpace(3)
	self := &domain.Node{ID: sp.FromUint64(0), Addr: "n0:1"}
	other := &domain.Node{ID: sp.FromUint64(2), Addr: "n2:1"}
	rt := New(self, sp)

	rt.SetSuccessor(other)
	if rt.Finger(1) != other {
		t.Error("expected SetSuccessor to update finger 1")
	}
}
