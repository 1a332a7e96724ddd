// Package store caches corpus match results in a local SQLite database.
//
// The cache maps a sequence fingerprint hash to the resolved OEIS id so
// repeated scans do not hit the network for sequences already identified.
// Writers are serialized; readers run concurrently through database/sql's
// connection pool.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when no record exists for a hash.
var ErrNotFound = errors.New("fingerprint not found")

// Record is one cached match result.
type Record struct {
	Hash      string    // fingerprint hash, primary key
	Anum      int64     // OEIS id; 0 means confirmed missing, -1 unreachable
	Terms     string    // canonical term string of the fingerprint
	Triangle  string    // triangle name the sequence came from
	Transform string    // transform under which the trait was evaluated
	Trait     string    // trait name
	ScanID    string    // scan session that produced the record
	CreatedAt time.Time
}

// Store is a SQLite-backed fingerprint cache.
type Store struct {
	mu sync.Mutex // serializes writes
	db *sql.DB
}

// Open opens (creating if necessary) the fingerprint database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "creating store directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening fingerprint database")
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "initializing schema")
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get returns the cached record for hash, or ErrNotFound.
func (s *Store) Get(hash string) (*Record, error) {
	row := s.db.QueryRow(
		"SELECT hash, anum, terms, triangle, transform, trait, scan_id, created_at FROM fingerprints WHERE hash = ?",
		hash,
	)

	var rec Record
	var createdAt string
	err := row.Scan(&rec.Hash, &rec.Anum, &rec.Terms, &rec.Triangle,
		&rec.Transform, &rec.Trait, &rec.ScanID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "getting fingerprint %s", hash)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing created_at for %s", hash)
	}
	return &rec, nil
}

// Put stores a record, replacing any existing record for the same hash.
// A later confirmed result overwrites an earlier unreachable sentinel.
func (s *Store) Put(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO fingerprints (hash, anum, terms, triangle, transform, trait, scan_id, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(hash) DO UPDATE SET
             anum = excluded.anum,
             scan_id = excluded.scan_id,
             created_at = excluded.created_at`,
		rec.Hash, rec.Anum, rec.Terms, rec.Triangle, rec.Transform,
		rec.Trait, rec.ScanID, rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrapf(err, "persisting fingerprint %s", rec.Hash)
	}
	return nil
}

// Count returns the number of cached records.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM fingerprints").Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting fingerprints")
	}
	return n, nil
}
