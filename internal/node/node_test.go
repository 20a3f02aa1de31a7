package node

import (
	"context"
	"testing"
	"time"

	"ChordDHT/internal/client"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/routingtable"
	"ChordDHT/internal/storage"
)

// newTestNode builds a node with a real (but never-dialing) RPC manager;
// every path exercised here stays on the local short-circuit.
func newTestNode(t *testing.T, bits int, id uint64) *Node {
	t.Helper()
	sp, err := domain.NewSpace(bits)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	self := &domain.Node{ID: sp.FromUint64(id), Addr: "test-node:1"}
	rt := routingtable.New(self, sp)
	store := storage.NewMemoryStore(sp, 10, nil)
	rpc := client.New(time.Second, 0)
	t.Cleanup(rpc.Close)
	return New(self, sp, rt, store, rpc)
}

func TestSingletonRing(t *testing.T) {
	n := newTestNode(t, 3, 0)
	ctx := context.Background()

	if err := n.Join(ctx, nil); err != nil {
		t.Fatalf("Join(nil): %v", err)
	}

	if succ := n.Successor(); succ == nil || !succ.ID.Equal(n.ID()) {
		t.Error("singleton successor must be self")
	}
	if pred := n.Predecessor(); pred == nil || !pred.ID.Equal(n.ID()) {
		t.Error("singleton predecessor must be self")
	}
	for i := 1; i <= n.Table().M(); i++ {
		if f := n.Table().Finger(i); f == nil || !f.ID.Equal(n.ID()) {
			t.Errorf("singleton finger %d must be self", i)
		}
	}

	if _, err := n.Insert(ctx, "a", "1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	v, found, err := n.Get(ctx, "a")
	if err != nil || !found || v != "1" {
		t.Errorf("Get(a) = (%q, %v, %v), want (1, true, nil)", v, found, err)
	}
	if found, _ := n.Contains(ctx, "a"); !found {
		t.Error("Contains(a) must be true after Insert")
	}
	if err := n.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, found, _ := n.Get(ctx, "a"); found {
		t.Error("Get(a) must report not-found after Remove")
	}
}

func TestFindSuccessorSingleton(t *testing.T) {
	n := newTestNode(t, 3, 2)
	ctx := context.Background()
	if err := n.Join(ctx, nil); err != nil {
		t.Fatalf("Join(nil): %v", err)
	}

	for k := uint64(0); k < 8; k++ {
		owner, err := n.FindSuccessor(ctx, n.Space().FromUint64(k))
		if err != nil {
			t.Fatalf("FindSuccessor(%d): %v", k, err)
		}
		if !owner.ID.Equal(n.ID()) {
			t.Errorf("FindSuccessor(%d) = %s, want self", k, owner.ID.ToHexString(true))
		}
	}
}

// TestClosestPrecedingFinger uses the stable three-node ring's node 0
// (fingers 3, 3, 6) and checks the scan from the top slot down.
func TestClosestPrecedingFinger(t *testing.T) {
	n := newTestNode(t, 3, 0)
	sp := n.Space()
	n3 := &domain.Node{ID: sp.FromUint64(3), Addr: "n3:1"}
	n6 := &domain.Node{ID: sp.FromUint64(6), Addr: "n6:1"}
	n.Table().SetFinger(1, n3)
	n.Table().SetFinger(2, n3)
	n.Table().SetFinger(3, n6)

	cases := []struct {
		k    uint64
		want *domain.Node
	}{
		{2, n.Self()}, // no finger in (0, 2)
		{5, n3},       // 6 is past 5, 3 qualifies
		{7, n6},       // 6 is the closest preceding finger
	}
	for _, c := range cases {
		got := n.ClosestPrecedingFinger(sp.FromUint64(c.k))
		if !got.ID.Equal(c.want.ID) {
			t.Errorf("ClosestPrecedingFinger(%d) = %s, want %s",
				c.k, got.ID.ToHexString(true), c.want.ID.ToHexString(true))
		}
	}
}

func TestUpdateFingerTableAdoption(t *testing.T) {
	n := newTestNode(t, 3, 0)
	ctx := context.Background()
	if err := n.Join(ctx, nil); err != nil {
		t.Fatalf("Join(nil): %v", err)
	}

	joining := &domain.Node{ID: n.Space().FromUint64(3), Addr: "n3:1"}
	if err := n.UpdateFingerTable(ctx, joining, 1, 0); err != nil {
		t.Fatalf("UpdateFingerTable: %v", err)
	}
	if f := n.Table().Finger(1); f == nil || !f.ID.Equal(joining.ID) {
		t.Fatal("expected finger 1 to adopt the joining node")
	}

	// a farther node must not displace the closer one already there
	farther := &domain.Node{ID: n.Space().FromUint64(5), Addr: "n5:1"}
	if err := n.UpdateFingerTable(ctx, farther, 1, 0); err != nil {
		t.Fatalf("UpdateFingerTable: %v", err)
	}
	if f := n.Table().Finger(1); !f.ID.Equal(joining.ID) {
		t.Error("finger 1 must keep the closer node")
	}
}

// TestPopInInterval pins the arc convention (exclusive lower, inclusive
// upper) with keys whose md5-mod-8 identifiers are known: a=4, e=1,
// f=7, h=5.
func TestPopInInterval(t *testing.T) {
	n := newTestNode(t, 3, 0)
	for _, k := range []string{"a", "e", "f", "h"} {
		if _, err := n.LocalPut(k, k+"-value"); err != nil {
			t.Fatalf("LocalPut(%s): %v", k, err)
		}
	}

	sp := n.Space()
	popped := n.PopInInterval(sp.FromUint64(4), sp.FromUint64(1))

	got := map[string]bool{}
	for _, kv := range popped {
		got[kv.Key] = true
	}
	// arc (4, 1] wraps: 5, 6, 7, 0, 1 — so h(5), f(7), e(1); not a(4)
	for _, want := range []string{"h", "f", "e"} {
		if !got[want] {
			t.Errorf("expected %q (in arc) to be extracted", want)
		}
	}
	if got["a"] {
		t.Error("'a' hashes to the arc's exclusive lower bound and must stay")
	}
	if !n.LocalContains("a") {
		t.Error("'a' must still be stored after the extraction")
	}
}

func TestUpdateHashTableSingletonNoop(t *testing.T) {
	n := newTestNode(t, 3, 0)
	ctx := context.Background()
	if err := n.Join(ctx, nil); err != nil {
		t.Fatalf("Join(nil): %v", err)
	}
	// successor == self: nothing to pull, and no RPC may be attempted
	if err := n.UpdateHashTable(ctx); err != nil {
		t.Errorf("UpdateHashTable on a singleton must be a no-op, got %v", err)
	}
}

func TestDisconnectSingleton(t *testing.T) {
	n := newTestNode(t, 3, 0)
	ctx := context.Background()
	if err := n.Join(ctx, nil); err != nil {
		t.Fatalf("Join(nil): %v", err)
	}

	if err := n.Disconnect(ctx); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	select {
	case <-n.Disconnected():
	default:
		t.Error("Disconnected channel must be closed after Disconnect")
	}
}
