package writer

import "time"

// NopWriter discards every row. Used when CSV export is disabled.
type NopWriter struct{}

func (NopWriter) WriteRow(op, node, result string, delay time.Duration) error { return nil }

func (NopWriter) Flush() error { return nil }

func (NopWriter) Close() error { return nil }
