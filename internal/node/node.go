// Package node implements the chord overlay's core logic: ring lookup,
// joining (atomic or incremental), periodic stabilization, key
// ownership, and graceful departure. Everything here is
// transport-agnostic: internal/server adapts it to gRPC, internal/client
// carries RPCs to remote peers.
package node

import (
	"sync"
	"time"

	"ChordDHT/internal/client"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"
	"ChordDHT/internal/routingtable"
	"ChordDHT/internal/storage"
)

// Node is a single chord participant: its own identity, its finger
// table, its local key store, and the RPC manager it uses to reach
// peers. Every exported method is safe for concurrent use; the finger
// table and store each guard their own state, so Node itself only needs
// to serialize the few multi-step sequences (join, disconnect) that
// must not interleave with a concurrent stabilize tick.
type Node struct {
	self  *domain.Node
	space domain.Space

	rt    *routingtable.Table
	store storage.Store
	rpc   *client.Manager
	lgr   logger.Logger

	useStabilization bool
	rpcTimeout       time.Duration

	stabilizeInterval        time.Duration
	fixFingersInterval       time.Duration
	checkPredecessorInterval time.Duration

	lifecycleMu sync.Mutex // serializes Join, Disconnect and stabilize ticks
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	disconnectedCh   chan struct{}
	disconnectedOnce sync.Once
}

// Option configures a Node at construction time.
type Option func(*Node)

// WithLogger injects a structured logger. Defaults to a no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(n *Node) { n.lgr = l }
}

// WithStabilization selects the incremental join/maintenance path
// (periodic stabilize/fix_fingers/check_predecessor) instead of the
// one-shot atomic join. Disabled by default.
func WithStabilization(enabled bool) Option {
	return func(n *Node) { n.useStabilization = enabled }
}

// WithRPCTimeout bounds the context of each background worker tick and
// of the asynchronous key pull notify triggers. RPCs made on behalf of
// an inbound request run under that request's own context instead.
// Defaults to 5s.
func WithRPCTimeout(d time.Duration) Option {
	return func(n *Node) { n.rpcTimeout = d }
}

// WithStabilizeInterval sets the period between stabilize() ticks.
func WithStabilizeInterval(d time.Duration) Option {
	return func(n *Node) { n.stabilizeInterval = d }
}

// WithFixFingersInterval sets the period between fix_fingers() ticks.
func WithFixFingersInterval(d time.Duration) Option {
	return func(n *Node) { n.fixFingersInterval = d }
}

// WithCheckPredecessorInterval sets the period between
// check_predecessor() ticks.
func WithCheckPredecessorInterval(d time.Duration) Option {
	return func(n *Node) { n.checkPredecessorInterval = d }
}

// New builds a Node around an already-constructed finger table, store,
// and RPC manager. The node starts detached from any ring; call Join to
// attach it.
func New(self *domain.Node, space domain.Space, rt *routingtable.Table, store storage.Store, rpc *client.Manager, opts ...Option) *Node {
	n := &Node{
		self:                     self,
		space:                    space,
		rt:                       rt,
		store:                    store,
		rpc:                      rpc,
		lgr:                      &logger.NopLogger{},
		rpcTimeout:               5 * time.Second,
		stabilizeInterval:        1 * time.Second,
		fixFingersInterval:       1 * time.Second,
		checkPredecessorInterval: 1 * time.Second,
		stopCh:                   make(chan struct{}),
		disconnectedCh:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID returns the node's own ring identifier.
func (n *Node) ID() domain.ID { return n.self.ID }

// Self returns the node's own identity (id + address).
func (n *Node) Self() *domain.Node { return n.self }

// Space returns the identifier space this node was built for.
func (n *Node) Space() domain.Space { return n.space }

// Table exposes the underlying finger table, used by the server layer
// to build FingerTableResponse snapshots and by the `finger-table` CLI
// command.
func (n *Node) Table() *routingtable.Table { return n.rt }

// Store exposes the underlying key store, used by the server layer to
// build HashTableResponse snapshots and by the `hash-table` CLI command.
func (n *Node) Store() storage.Store { return n.store }

// Successor returns the node's current successor (finger 1), or nil.
func (n *Node) Successor() *domain.Node { return n.rt.Successor() }

// SetSuccessor sets the node's successor.
func (n *Node) SetSuccessor(s *domain.Node) { n.rt.SetSuccessor(s) }

// Predecessor returns the node's current predecessor, or nil.
func (n *Node) Predecessor() *domain.Node { return n.rt.Predecessor() }

// SetPredecessor sets the node's predecessor.
func (n *Node) SetPredecessor(p *domain.Node) { n.rt.SetPredecessor(p) }

// Ping is a trivial liveness probe: if the process can answer at all,
// it's alive. Backs check_predecessor's remote probe.
func (n *Node) Ping() error { return nil }

// Disconnected is closed once Disconnect has run, whether it was
// triggered by a local signal or by the client API's Disconnect RPC.
// The process main watches it so a remote disconnect actually shuts the
// process down instead of leaving a detached node serving forever.
func (n *Node) Disconnected() <-chan struct{} { return n.disconnectedCh }

// plusOne shifts id forward by one position in the ring, the standard
// trick for turning Between's half-open arc into an
// inclusive endpoint.
func (n *Node) plusOne(id domain.ID) domain.ID {
	shifted, err := n.space.AddMod(id, n.space.FromUint64(1))
	if err != nil {
		// id is assumed to already be a valid member of this space.
		panic("node: plusOne on invalid id: " + err.Error())
	}
	return shifted
}
