// Package report emits scan results as JSONL records.
//
// One record is written per (triangle, transform, trait) unit. A scan
// session is stamped with a UUID v7 so records from different runs can
// be separated after the fact.
package report

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Record is one scan result line.
type Record struct {
	ScanID    string `json:"scan_id"`
	Triangle  string `json:"triangle"`
	Transform string `json:"transform"`
	Trait     string `json:"trait"`
	Anum      int64  `json:"anum"` // 0 missing, -1 unreachable
	Hash      string `json:"hash"`
	Terms     string `json:"terms"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Writer streams records to an underlying io.Writer as JSONL.
type Writer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	scanID string
}

// NewWriter creates a report writer with a fresh scan id.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), scanID: NewScanID()}
}

// NewScanID generates a scan session identifier, UUID v7 with a v4
// fallback.
func NewScanID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ScanID returns the writer's scan session identifier.
func (w *Writer) ScanID() string { return w.scanID }

// Write emits one record. The scan id and timestamp are stamped here.
func (w *Writer) Write(rec Record) error {
	rec.ScanID = w.scanID
	rec.Timestamp = time.Now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshaling report record")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.w.Write(data); err != nil {
		return errors.Wrap(err, "writing report record")
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "writing record separator")
	}
	return nil
}

// Flush writes any buffered records through to the underlying writer.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Flush()
}
