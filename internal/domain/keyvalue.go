package domain

import "errors"

// Common errors surfaced by key routing.
var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrNotResponsible = errors.New("node is not responsible for this key")
)

// KeyValue is a single stored entry: the raw key string, its hashed
// identifier on the ring, and its value. It is the unit moved during
// key hand-off (pop_in_interval / update_hash_table).
type KeyValue struct {
	HashedKey ID
	Key       string
	Value     string
}
