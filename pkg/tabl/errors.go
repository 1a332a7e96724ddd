package tabl

import "errors"

// Processing thresholds shared across the engine. A fingerprint needs
// MinTerms terms, extended trait scans need MinRows rows, and DiagSize
// is the row count that keeps anti-diagonal traits fully defined.
const (
	MinTerms = 24
	MinRows  = 48
	DiagSize = 72
)

// Structural errors. These abort the single (table, trait) unit of work
// they occur in and carry enough context to diagnose; they are never
// silently swallowed.
var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNonIntegerInverse = errors.New("table has no integer inverse")
	ErrInsufficientRows  = errors.New("not enough rows for extended processing")
	ErrInsufficientTerms = errors.New("not enough terms for a fingerprint")
	ErrTableNotFound     = errors.New("table not found")
)
