package client

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	dhtv1 "ChordDHT/internal/api/dht/v1"
	"ChordDHT/internal/telemetry/lookuptrace"
)

// Manager manages reusable gRPC connections keyed by address.
type Manager struct {
	mu          sync.RWMutex
	conns       map[string]*connEntry
	dialTimeout time.Duration
	idleTTL     time.Duration
	stopCh      chan struct{}
}

type connEntry struct {
	conn     *grpc.ClientConn
	lastUsed time.Time
}

// New creates a minimal manager.
// dialTimeout: timeout for dialing a new connection.
// idleTTL: if >0, connections idle for at least idleTTL are periodically closed.
func New(dialTimeout, idleTTL time.Duration) *Manager {
	m := &Manager{
		conns:       make(map[string]*connEntry),
		dialTimeout: dialTimeout,
		idleTTL:     idleTTL,
		stopCh:      make(chan struct{}),
	}
	if idleTTL > 0 {
		go m.evictLoop()
	}
	return m
}

// Close closes every connection and stops the evict loop.
func (m *Manager) Close() {
	close(m.stopCh)
	m.mu.Lock()
	defer m.mu.Unlock()
	for addr, ce := range m.conns {
		_ = ce.conn.Close()
		delete(m.conns, addr)
	}
}

// Do runs fn with a typed client pointed at addr.
// Creates the connection if it doesn't exist yet, then reuses it.
func (m *Manager) Do(ctx context.Context, addr string, fn func(client dhtv1.DHTClient) error) error {
	conn, err := m.getConn(ctx, addr)
	if err != nil {
		return err
	}
	client := dhtv1.NewDHTClient(conn)
	return fn(client)
}

// getConn returns (or creates) a reusable *grpc.ClientConn for addr.
func (m *Manager) getConn(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	// fast path: already cached
	m.mu.RLock()
	if ce, ok := m.conns[addr]; ok {
		ce.lastUsed = time.Now()
		c := ce.conn
		m.mu.RUnlock()
		return c, nil
	}
	m.mu.RUnlock()

	// slow path: dial and store
	m.mu.Lock()
	defer m.mu.Unlock()
	// recheck: someone else might have created it already
	if ce, ok := m.conns[addr]; ok {
		ce.lastUsed = time.Now()
		return ce.conn, nil
	}

	ctxDial, cancel := context.WithTimeout(ctx, m.dialTimeout)
	defer cancel()
	conn, err := grpc.DialContext(
		ctxDial,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		// both are no-ops unless a tracer provider is installed
		// (telemetry.InitTracer); the lookuptrace interceptor keeps the
		// x-chord-lookup mark flowing so every FindSuccessor hop of a
		// lookup chain joins the same trace
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(lookuptrace.ClientInterceptor()),
	)
	if err != nil {
		return nil, err
	}
	m.conns[addr] = &connEntry{conn: conn, lastUsed: time.Now()}
	return conn, nil
}

// --- minimal eviction ---

func (m *Manager) evictLoop() {
	t := time.NewTicker(15 * time.Second)
	defer t.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-t.C:
			m.evictIdle()
		}
	}
}

func (m *Manager) evictIdle() {
	if m.idleTTL <= 0 {
		return
	}
	now := time.Now()
	var toClose []*grpc.ClientConn

	m.mu.Lock()
	for addr, ce := range m.conns {
		if now.Sub(ce.lastUsed) >= m.idleTTL {
			toClose = append(toClose, ce.conn)
			delete(m.conns, addr)
		}
	}
	m.mu.Unlock()

	for _, c := range toClose {
		_ = c.Close()
	}
}
