// Package directory implements the name service: a single logical
// instance that entities register under `node.<type>.<id>` and resolve
// each other through.
package directory

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"ChordDHT/internal/api"
	v1 "ChordDHT/internal/api/directory/v1"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// entry is one registered name: its address and, for uniqueness
// checks on re-registration, nothing else — identity is the
// (type, id) pair under which it is keyed.
type entry struct {
	addr string
}

type key struct {
	typ string
	id  string
}

// Directory is the in-memory backing store for the name service
// process (cmd/nameservice): idempotent re-registration of the same
// (type, id, addr), conflict error on a different addr.
type Directory struct {
	v1.UnimplementedDirectoryServer

	mu      sync.RWMutex
	entries map[key]entry
	lgr     logger.Logger

	// maxPickFreeAttempts bounds the rejection sample PickFreeChordID
	// performs before giving up: with every id taken, spinning forever
	// is worse than failing loudly.
	maxPickFreeAttempts int
}

// New builds an empty directory.
func New(lgr logger.Logger) *Directory {
	if lgr == nil {
		lgr = &logger.NopLogger{}
	}
	return &Directory{
		entries:             make(map[key]entry),
		lgr:                 lgr,
		maxPickFreeAttempts: 1000,
	}
}

func idString(id []byte) string {
	return string(id)
}

func (d *Directory) Register(ctx context.Context, in *v1.RegisterRequest) (*v1.RegisterResponse, error) {
	k := key{typ: in.Type, id: idString(in.Id)}
	uri := fmt.Sprintf("node.%s.%x", in.Type, in.Id)

	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.entries[k]; ok {
		if existing.addr != in.Addr {
			return nil, status.Errorf(codes.AlreadyExists, "name %s already registered at %s", uri, existing.addr)
		}
		return &v1.RegisterResponse{Uri: uri}, nil
	}
	d.entries[k] = entry{addr: in.Addr}
	d.lgr.Debug("registered", logger.F("uri", uri), logger.F("addr", in.Addr))
	return &v1.RegisterResponse{Uri: uri}, nil
}

func (d *Directory) Resolve(ctx context.Context, in *v1.ResolveRequest) (*v1.ResolveResponse, error) {
	k := key{typ: in.Type, id: idString(in.Id)}

	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.entries[k]
	if !ok {
		return &v1.ResolveResponse{Found: false}, nil
	}
	return &v1.ResolveResponse{Addr: e.addr, Found: true}, nil
}

func (d *Directory) List(ctx context.Context, in *v1.ListRequest) (*v1.ListResponse, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var ids [][]byte
	for k := range d.entries {
		if k.typ == in.Type {
			ids = append(ids, []byte(k.id))
		}
	}
	return &v1.ListResponse{Ids: ids}, nil
}

func (d *Directory) PickRandom(ctx context.Context, in *v1.PickRandomRequest) (*v1.PickRandomResponse, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var candidates []key
	for k := range d.entries {
		if k.typ == in.Type {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		return &v1.PickRandomResponse{Found: false}, nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(candidates))))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	pick := candidates[n.Int64()]
	return &v1.PickRandomResponse{
		Id:    []byte(pick.id),
		Addr:  d.entries[pick].addr,
		Found: true,
	}, nil
}

// PickFreeChordID rejection-samples an id in [0, 2^Bits) not currently
// registered under type "chord". The caller still races a concurrent
// claimant; Register's AlreadyExists answer is the arbiter.
func (d *Directory) PickFreeChordID(ctx context.Context, in *v1.PickFreeChordIDRequest) (*v1.PickFreeChordIDResponse, error) {
	if in.Bits <= 0 {
		return nil, status.Error(codes.InvalidArgument, "bits must be > 0")
	}
	byteLen := (int(in.Bits) + 7) / 8
	max := new(big.Int).Lsh(big.NewInt(1), uint(in.Bits))

	d.mu.RLock()
	defer d.mu.RUnlock()

	for attempt := 0; attempt < d.maxPickFreeAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		buf := n.Bytes()
		id := make([]byte, byteLen)
		copy(id[byteLen-len(buf):], buf)

		k := key{typ: "chord", id: idString(id)}
		if _, taken := d.entries[k]; !taken {
			return &v1.PickFreeChordIDResponse{Id: id}, nil
		}
	}
	return nil, status.Error(codes.ResourceExhausted, "no free chord id found after rejection sampling")
}

func (d *Directory) Remove(ctx context.Context, in *v1.RemoveRequest) (*api.Empty, error) {
	k := key{typ: in.Type, id: idString(in.Id)}

	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.entries, k)
	d.lgr.Debug("removed", logger.F("type", in.Type), logger.F("id", domain.ID(in.Id).ToHexString(true)))
	return &api.Empty{}, nil
}
