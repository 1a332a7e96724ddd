package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "db", "fingerprints.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPutGetRoundTrip(t *testing.T) {
	st := openTestStore(t)

	rec := Record{
		Hash:      "a1b2c3d4e5f60718",
		Anum:      7318,
		Terms:     "1,1,1,1,2,1",
		Triangle:  "Binomial",
		Transform: "Std",
		Trait:     "Triangle",
		ScanID:    "scan-1",
	}
	require.NoError(t, st.Put(rec))

	got, err := st.Get(rec.Hash)
	require.NoError(t, err)
	assert.Equal(t, rec.Anum, got.Anum)
	assert.Equal(t, rec.Terms, got.Terms)
	assert.Equal(t, rec.Triangle, got.Triangle)
	assert.Equal(t, rec.Transform, got.Transform)
	assert.Equal(t, rec.Trait, got.Trait)
	assert.Equal(t, rec.ScanID, got.ScanID)
	assert.False(t, got.CreatedAt.IsZero(), "created_at stamped on put")
}

func TestGetMissing(t *testing.T) {
	st := openTestStore(t)
	_, err := st.Get("0000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutUpsert(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put(Record{Hash: "h", Anum: -1, Triangle: "Lah", ScanID: "scan-1"}))
	require.NoError(t, st.Put(Record{
		Hash:      "h",
		Anum:      105278,
		Triangle:  "Lah",
		ScanID:    "scan-2",
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}))

	got, err := st.Get("h")
	require.NoError(t, err)
	assert.Equal(t, int64(105278), got.Anum)
	assert.Equal(t, "scan-2", got.ScanID)
	assert.Equal(t, 2026, got.CreatedAt.Year())

	n, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCount(t *testing.T) {
	st := openTestStore(t)

	n, err := st.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, st.Put(Record{Hash: "h1"}))
	require.NoError(t, st.Put(Record{Hash: "h2"}))

	n, err = st.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCloseIdempotent(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "fingerprints.db"))
	require.NoError(t, err)
	require.NoError(t, st.Close())
	assert.NoError(t, st.Close())
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Put(Record{Hash: "persist", Anum: 45}))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Get("persist")
	require.NoError(t, err)
	assert.Equal(t, int64(45), got.Anum)
}
