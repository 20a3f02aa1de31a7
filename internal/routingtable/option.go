package routingtable

import "ChordDHT/internal/logger"

type Option func(*Table)

// WithLogger sets the logger used by the routing table.
func WithLogger(l logger.Logger) Option {
	return func(t *Table) {
		t.logger = l
	}
}
