package routingtable

import (
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"
	"fmt"
	"sync"
)

// routingEntry holds a single mutable node pointer with its own lock,
// so reads/writes to one slot never contend with another.
type routingEntry struct {
	node *domain.Node
	mu   sync.RWMutex
}

// FingerEntry is a read-only snapshot of one finger slot: the
// (immutable) start identifier it was computed for, and the node
// currently believed to be the successor of that start. A nil Node
// encodes NONE.
type FingerEntry struct {
	Start domain.ID
	Node  *domain.Node
}

// Table is the finger table of a single chord node. Slot 0 is the
// predecessor; slots 1..m are the fingers, each pointing at the current
// best-known successor of start_index(i) = (self.id + 2^(i-1)) mod N.
//
// Reads and writes of a slot go through that slot's own lock, so every
// mutation a remote caller effects through the RPC surface is
// serialized against the local background workers.
type Table struct {
	logger      logger.Logger
	space       domain.Space
	self        *domain.Node
	starts      []domain.ID     // immutable: starts[i] is finger (i+1)'s start
	fingers     []*routingEntry // fingers[i] is finger (i+1)'s current node
	predecessor *routingEntry
}

// New creates a finger table for self with m = space.Bits slots plus the
// predecessor slot. All slots start as NONE (nil) until a join populates
// them (atomic join fills them directly; incremental join leaves all but
// the successor as NONE).
func New(self *domain.Node, space domain.Space, opts ...Option) *Table {
	m := space.Bits
	t := &Table{
		self:        self,
		space:       space,
		starts:      make([]domain.ID, m),
		fingers:     make([]*routingEntry, m),
		predecessor: &routingEntry{},
		logger:      &logger.NopLogger{},
	}
	for i := 0; i < m; i++ {
		start, err := space.AddMod(self.ID, space.PowerOfTwo(i))
		if err != nil {
			// self.ID is assumed valid for this space; AddMod only fails
			// on malformed inputs.
			panic(fmt.Sprintf("routingtable.New: invalid start computation: %v", err))
		}
		t.starts[i] = start
		t.fingers[i] = &routingEntry{}
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger.Debug("finger table initialized", logger.F("m", m))
	return t
}

// InitSingleNode configures the table to represent a singleton ring: the
// predecessor and every finger point at self.
func (t *Table) InitSingleNode() {
	for _, e := range t.fingers {
		e.mu.Lock()
		e.node = t.self
		e.mu.Unlock()
	}
	t.predecessor.mu.Lock()
	t.predecessor.node = t.self
	t.predecessor.mu.Unlock()
	t.logger.Debug("finger table set to singleton ring")
}

// Space returns the identifier space this table was built for.
func (t *Table) Space() domain.Space { return t.space }

// Self returns the local node owning this table.
func (t *Table) Self() *domain.Node { return t.self }

// M returns the number of finger slots (the ring's bit width m).
func (t *Table) M() int { return len(t.fingers) }

// Start returns the start identifier for finger i (1-indexed, i in
// [1, m]). Start is immutable for the table's lifetime.
func (t *Table) Start(i int) domain.ID {
	if i < 1 || i > len(t.starts) {
		panic(fmt.Sprintf("routingtable: finger index %d out of range [1,%d]", i, len(t.starts)))
	}
	return t.starts[i-1]
}

// Finger returns the node currently believed to be the successor of
// Start(i), or nil (NONE) if unset.
func (t *Table) Finger(i int) *domain.Node {
	if i < 1 || i > len(t.fingers) {
		t.logger.Warn("Finger: index out of range", logger.F("requested", i), logger.F("valid_range", fmt.Sprintf("[1..%d]", len(t.fingers))))
		return nil
	}
	e := t.fingers[i-1]
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.node
}

// SetFinger updates finger i's node. This is the only mutation method
// for a finger slot: Start is fixed at construction and never replaced.
func (t *Table) SetFinger(i int, node *domain.Node) {
	if i < 1 || i > len(t.fingers) {
		t.logger.Warn("SetFinger: index out of range", logger.F("requested", i), logger.F("valid_range", fmt.Sprintf("[1..%d]", len(t.fingers))))
		return
	}
	e := t.fingers[i-1]
	e.mu.Lock()
	e.node = node
	e.mu.Unlock()
	t.logger.Debug("SetFinger: updated", logger.F("index", i), logger.FNode("node", node))
}

// Successor returns finger 1's node, the direct successor.
func (t *Table) Successor() *domain.Node { return t.Finger(1) }

// SetSuccessor sets finger 1's node.
func (t *Table) SetSuccessor(node *domain.Node) { t.SetFinger(1, node) }

// Predecessor returns the predecessor pointer (slot 0), or nil if unset.
func (t *Table) Predecessor() *domain.Node {
	t.predecessor.mu.RLock()
	defer t.predecessor.mu.RUnlock()
	return t.predecessor.node
}

// SetPredecessor updates the predecessor pointer.
func (t *Table) SetPredecessor(node *domain.Node) {
	t.predecessor.mu.Lock()
	t.predecessor.node = node
	t.predecessor.mu.Unlock()
	t.logger.Debug("SetPredecessor: updated", logger.FNode("predecessor", node))
}

// Entries returns a snapshot of every finger slot (1..m) in slot order.
// Callers receive a shallow copy and may not affect internal state.
func (t *Table) Entries() []FingerEntry {
	out := make([]FingerEntry, len(t.fingers))
	for i := range t.fingers {
		e := t.fingers[i]
		e.mu.RLock()
		node := e.node
		e.mu.RUnlock()
		out[i] = FingerEntry{Start: t.starts[i], Node: node}
	}
	return out
}

// DebugLog emits a single structured DEBUG log entry with a snapshot of
// self, predecessor, and every finger slot. The `finger-table` CLI
// command does not go through it; it reads the table over the client
// API's GetFingerTable.
func (t *Table) DebugLog() {
	pred := t.Predecessor()
	entries := t.Entries()
	fingerInfo := make([]map[string]any, 0, len(entries))
	for i, e := range entries {
		info := map[string]any{"index": i + 1, "start": e.Start.ToHexString(true)}
		if e.Node == nil {
			info["node"] = nil
		} else {
			info["node"] = map[string]any{"id": e.Node.ID.ToHexString(true), "addr": e.Node.Addr}
		}
		fingerInfo = append(fingerInfo, info)
	}
	t.logger.Debug("finger table snapshot",
		logger.FNode("self", t.self),
		logger.FNode("predecessor", pred),
		logger.F("fingers", fingerInfo),
	)
}
