package directory

import (
	"context"
	"testing"

	v1 "ChordDHT/internal/api/directory/v1"
	"ChordDHT/internal/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestDirectoryRegisterResolve(t *testing.T) {
	d := New(&logger.NopLogger{})
	ctx := context.Background()

	id := []byte{0x01}
	if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: id, Addr: "10.0.0.1:4000"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := d.Resolve(ctx, &v1.ResolveRequest{Type: "chord", Id: id})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Found || resp.Addr != "10.0.0.1:4000" {
		t.Errorf("expected to resolve the registered address, got %+v", resp)
	}
}

func TestDirectoryRegisterIdempotent(t *testing.T) {
	d := New(&logger.NopLogger{})
	ctx := context.Background()
	id := []byte{0x02}

	if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: id, Addr: "10.0.0.2:4000"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// re-registering the same (type, id, addr) is a no-op, not a conflict
	if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: id, Addr: "10.0.0.2:4000"}); err != nil {
		t.Errorf("expected idempotent re-registration to succeed, got %v", err)
	}
}

func TestDirectoryRegisterConflict(t *testing.T) {
	d := New(&logger.NopLogger{})
	ctx := context.Background()
	id := []byte{0x03}

	if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: id, Addr: "10.0.0.3:4000"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: id, Addr: "10.0.0.99:4000"})
	if status.Code(err) != codes.AlreadyExists {
		t.Errorf("expected AlreadyExists registering a different addr under the same name, got %v", err)
	}
}

func TestDirectoryResolveMissing(t *testing.T) {
	d := New(&logger.NopLogger{})
	resp, err := d.Resolve(context.Background(), &v1.ResolveRequest{Type: "chord", Id: []byte{0xff}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Found {
		t.Error("expected Found=false for an unregistered id")
	}
}

func TestDirectoryListAndRemove(t *testing.T) {
	d := New(&logger.NopLogger{})
	ctx := context.Background()

	ids := [][]byte{{0x01}, {0x02}, {0x03}}
	for _, id := range ids {
		if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: id, Addr: "x:1"}); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}

	listResp, err := d.List(ctx, &v1.ListRequest{Type: "chord"})
	if err != nil || len(listResp.Ids) != 3 {
		t.Fatalf("expected 3 registered ids, got %d (err %v)", len(listResp.Ids), err)
	}

	if _, err := d.Remove(ctx, &v1.RemoveRequest{Type: "chord", Id: ids[0]}); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	listResp, err = d.List(ctx, &v1.ListRequest{Type: "chord"})
	if err != nil || len(listResp.Ids) != 2 {
		t.Errorf("expected 2 registered ids after removal, got %d (err %v)", len(listResp.Ids), err)
	}
}

func TestDirectoryPickRandomEmpty(t *testing.T) {
	d := New(&logger.NopLogger{})
	resp, err := d.PickRandom(context.Background(), &v1.PickRandomRequest{Type: "chord"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Found {
		t.Error("expected Found=false with no registered entities")
	}
}

func TestDirectoryPickFreeChordIDAvoidsTaken(t *testing.T) {
	d := New(&logger.NopLogger{})
	ctx := context.Background()

	// with bits=1 there are only two possible ids; take one and confirm
	// PickFreeChordID always returns the other.
	if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: []byte{0x00}, Addr: "x:1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		resp, err := d.PickFreeChordID(ctx, &v1.PickFreeChordIDRequest{Bits: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Id) != 1 || resp.Id[0] != 0x01 {
			t.Errorf("expected the only free id (0x01), got %x", resp.Id)
		}
	}
}

func TestDirectoryPickFreeChordIDExhausted(t *testing.T) {
	d := New(&logger.NopLogger{})
	d.maxPickFreeAttempts = 20
	ctx := context.Background()

	if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: []byte{0x00}, Addr: "x:1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := d.Register(ctx, &v1.RegisterRequest{Type: "chord", Id: []byte{0x01}, Addr: "x:2"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := d.PickFreeChordID(ctx, &v1.PickFreeChordIDRequest{Bits: 1})
	if status.Code(err) != codes.ResourceExhausted {
		t.Errorf("expected ResourceExhausted once every id is taken, got %v", err)
	}
}
