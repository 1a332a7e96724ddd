package oeis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterLuschny/tablInspector/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "fingerprints.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestMatcherCachesResults(t *testing.T) {
	seq := natSeq(1, 30)
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"count":1,"results":[{"number":27,"data":"` + seqData(seq) + `"}]}`))
	}))
	t.Cleanup(srv.Close)

	st := testStore(t)
	m := NewMatcher(st, testClient(srv.URL))
	meta := Meta{Triangle: "Binomial", Transform: "Std", Trait: "TablSum", ScanID: "scan-1"}

	res, fp, err := m.Match(context.Background(), seq, meta)
	require.NoError(t, err)
	assert.Equal(t, int64(27), res.Anum)
	assert.NotEmpty(t, fp.Hash)

	rec, err := st.Get(fp.Hash)
	require.NoError(t, err)
	assert.Equal(t, int64(27), rec.Anum)
	assert.Equal(t, "Binomial", rec.Triangle)
	assert.Equal(t, "scan-1", rec.ScanID)

	// Second match is served from the cache.
	res, _, err = m.Match(context.Background(), seq, meta)
	require.NoError(t, err)
	assert.Equal(t, int64(27), res.Anum)
	assert.Equal(t, int64(1), calls.Load())
}

func TestMatcherRetriesCachedUnreachable(t *testing.T) {
	seq := natSeq(1, 30)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":1,"results":[{"number":31,"data":"` + seqData(seq) + `"}]}`))
	}))
	t.Cleanup(srv.Close)

	st := testStore(t)
	m := NewMatcher(st, testClient(srv.URL))

	// Seed an unreachable sentinel; the matcher must not trust it.
	_, fp, err := NewMatcher(st, nil).Match(context.Background(), seq, Meta{})
	require.NoError(t, err)
	require.NoError(t, st.Put(store.Record{Hash: fp.Hash, Anum: AnumUnreachable, Terms: fp.Terms}))

	res, _, err := m.Match(context.Background(), seq, Meta{ScanID: "scan-2"})
	require.NoError(t, err)
	assert.Equal(t, int64(31), res.Anum)

	rec, err := st.Get(fp.Hash)
	require.NoError(t, err)
	assert.Equal(t, int64(31), rec.Anum, "confirmed result replaces the sentinel")
	assert.Equal(t, "scan-2", rec.ScanID)
}

func TestMatcherOffline(t *testing.T) {
	m := NewMatcher(testStore(t), nil)
	res, fp, err := m.Match(context.Background(), natSeq(1, 30), Meta{})
	require.NoError(t, err)
	assert.True(t, res.Unreachable())
	assert.NotEmpty(t, fp.Hash)
}

func TestMatcherNoStore(t *testing.T) {
	seq := natSeq(1, 30)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"results":[]}`))
	}))
	t.Cleanup(srv.Close)

	m := NewMatcher(nil, testClient(srv.URL))
	res, _, err := m.Match(context.Background(), seq, Meta{})
	require.NoError(t, err)
	assert.Equal(t, AnumMissing, res.Anum)
}

func TestMatcherRejectsShortSequence(t *testing.T) {
	m := NewMatcher(nil, nil)
	_, _, err := m.Match(context.Background(), natSeq(1, 5), Meta{})
	assert.Error(t, err)
}
