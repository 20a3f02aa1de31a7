// Package v1 defines the node-to-node (chord overlay) RPC surface:
// lookups, finger-table/predecessor maintenance, key routing, and
// hand-off. Message
// types are plain structs — see internal/api's package doc for why.
package v1

// NodeRef identifies a chord node on the wire: its ring identifier and
// its dialable address. Deliberately NOT a remote handle — RPC methods
// hand back identifier values, and callers re-dial when they need to
// invoke further methods on them, so nothing on the wire carries a
// connection lifetime.
type NodeRef struct {
	Id   []byte
	Addr string
}

type IdRequest struct {
	Target []byte
}

type IdResponse struct {
	Id []byte
}

type NodeResponse struct {
	Node *NodeRef
}

// UpdateFingerTableRequest carries update_finger_table(s, i)'s
// arguments for the atomic join path. SAddr is required
// alongside S: a finger slot must hold a dialable node, not a bare
// identifier.
type UpdateFingerTableRequest struct {
	S     []byte
	SAddr string
	I     int32
}

type KeyRequest struct {
	Key string
}

type ValueResponse struct {
	Value string
}

type BoolResponse struct {
	Value bool
}

type KVRequest struct {
	Key   string
	Value string
}

// RangeRequest carries the arguments of pop_in_interval(lo, hi).
type RangeRequest struct {
	Lo []byte
	Hi []byte
}

type KVEntry struct {
	HashedKey []byte
	Key       string
	Value     string
}

type KVListResponse struct {
	Entries []*KVEntry
}

type KVListRequest struct {
	Entries []*KVEntry
}

type FingerEntryMsg struct {
	Index int32
	Start []byte
	Node  *NodeRef
}

type FingerTableResponse struct {
	Self        *NodeRef
	Predecessor *NodeRef
	Fingers     []*FingerEntryMsg
}

type HashTableEntry struct {
	Key       string
	HashedKey []byte
	Value     string
}

type HashTableResponse struct {
	Entries []*HashTableEntry
}
