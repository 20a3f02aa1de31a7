package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// CSVWriter appends workload results to a CSV file, one row per
// operation, creating the file (and its header) on first use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
	closed bool
}

// NewCSVWriter opens filename for appending, creating parent directories
// as needed. The header row is written only when the file is new, so
// repeated runs against the same path accumulate rows.
func NewCSVWriter(filename string) (*CSVWriter, error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create directory %q: %w", dir, err)
	}

	_, statErr := os.Stat(filename)
	isNew := statErr != nil

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open csv file: %w", err)
	}

	w := csv.NewWriter(file)
	if isNew {
		if err := w.Write([]string{"timestamp", "op", "node", "result", "delay_ms"}); err != nil {
			file.Close()
			return nil, fmt.Errorf("cannot write header: %w", err)
		}
		w.Flush()
	}

	return &CSVWriter{file: file, writer: w}, nil
}

// WriteRow records one operation outcome.
func (cw *CSVWriter) WriteRow(op, node, result string, delay time.Duration) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return fmt.Errorf("cannot write: writer already closed")
	}

	record := []string{
		time.Now().Format(time.RFC3339Nano),
		op,
		node,
		result,
		fmt.Sprintf("%.3f", float64(delay.Milliseconds())),
	}
	if err := cw.writer.Write(record); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	return nil
}

// Flush pushes buffered rows to disk.
func (cw *CSVWriter) Flush() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		return fmt.Errorf("flush error: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Safe to call twice.
func (cw *CSVWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return nil
	}
	cw.writer.Flush()
	cw.closed = true

	if err := cw.writer.Error(); err != nil {
		_ = cw.file.Close()
		return fmt.Errorf("flush error: %w", err)
	}
	return cw.file.Close()
}
