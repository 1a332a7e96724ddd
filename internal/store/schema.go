package store

// Schema DDL for the fingerprint cache.
const createFingerprints = `CREATE TABLE IF NOT EXISTS fingerprints (
    hash TEXT PRIMARY KEY,
    anum INTEGER NOT NULL,
    terms TEXT NOT NULL,
    triangle TEXT NOT NULL,
    transform TEXT NOT NULL,
    trait TEXT NOT NULL,
    scan_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

// Index DDL for common queries.
const (
	idxFingerprintsTriangle = `CREATE INDEX IF NOT EXISTS idx_fingerprints_triangle ON fingerprints(triangle);`
	idxFingerprintsAnum     = `CREATE INDEX IF NOT EXISTS idx_fingerprints_anum ON fingerprints(anum);`
)

// schemaDDL lists all statements in execution order.
var schemaDDL = []string{
	createFingerprints,
	idxFingerprintsTriangle,
	idxFingerprintsAnum,
}
